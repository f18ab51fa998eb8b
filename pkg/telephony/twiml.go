package telephony

import "github.com/twilio/twilio-go/twiml"

// GatherSpeech speaks the given text and then listens for a spoken reply,
// posting the transcription to actionURL.
func GatherSpeech(text, actionURL string) (string, error) {
	gather := &twiml.VoiceGather{
		Action:        actionURL,
		Method:        "POST",
		Input:         "speech",
		SpeechTimeout: "auto",
		InnerElements: []twiml.Element{
			&twiml.VoiceSay{Message: text},
		},
	}
	return twiml.Voice([]twiml.Element{gather})
}

// SayHangup speaks the given text and ends the call.
func SayHangup(text string) (string, error) {
	return twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: text},
		&twiml.VoiceHangup{},
	})
}
