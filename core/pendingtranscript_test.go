package turntaking

import "testing"

func TestPendingTranscriptJoinsFragmentsWithSpaces(t *testing.T) {
	pending := newPendingTranscript()

	pending.Append("Hello")
	pending.Append("  world  ")
	pending.Append("again")

	if got, _ := pending.Snapshot(); got != "Hello world again" {
		t.Errorf("unexpected snapshot: %q", got)
	}
}

func TestPendingTranscriptDropsEmptyFragments(t *testing.T) {
	pending := newPendingTranscript()

	pending.Append("Hello")
	_, before := pending.Snapshot()
	pending.Append("   ")
	pending.Append("")
	_, after := pending.Snapshot()

	if before != after {
		t.Errorf("expected empty fragments not to bump the revision, went %d -> %d", before, after)
	}
	if pending.IsEmpty() {
		t.Error("expected buffer to still hold the first fragment")
	}
}

func TestPendingTranscriptClearReturnsContentsAndBumpsRevision(t *testing.T) {
	pending := newPendingTranscript()

	pending.Append("See you")
	pending.Append("tomorrow.")
	_, before := pending.Snapshot()

	if got := pending.Clear(); got != "See you tomorrow." {
		t.Errorf("unexpected cleared transcript: %q", got)
	}
	if !pending.IsEmpty() {
		t.Error("expected buffer to be empty after clearing")
	}
	if _, after := pending.Snapshot(); after == before {
		t.Error("expected clearing to bump the revision")
	}
}
