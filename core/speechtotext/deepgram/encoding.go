package deepgram

import (
	"fmt"

	"github.com/koscakluka/turngate-core/core/audio"
)

type encoding struct {
	SampleRate int
	Format     string
}

var supportedEncodings = map[string]string{
	audio.EncodingLinear16.Name(): "linear16",
	audio.EncodingMulaw.Name():    "mulaw",
	audio.EncodingALaw.Name():     "alaw",
}

func convertEncoding(info audio.EncodingInfo) (encoding, error) {
	if info.IsZero() {
		info = audio.GetDefaultEncodingInfo()
	}

	format, ok := supportedEncodings[info.Format.Name()]
	if !ok {
		return encoding{}, fmt.Errorf("unsupported encoding format: %s", info.Format.Name())
	}

	return encoding{SampleRate: info.SampleRate, Format: format}, nil
}
