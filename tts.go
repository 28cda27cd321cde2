package main

import (
	"encoding/base64"
	"log"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/texttospeech/v1"
)

var ttsService *texttospeech.Service

// Initialize the Cloud Text-to-Speech service from the service account
// credentials named in the config.
func initTTS() error {
	authJSON, err := os.ReadFile(config.CredentialsPath)
	if err != nil {
		return err
	}

	configGoogle, err := google.JWTConfigFromJSON(authJSON, texttospeech.CloudPlatformScope)
	if err != nil {
		return err
	}
	ttsService, err = texttospeech.New(configGoogle.Client(nil))
	return err
}

// synthesizeSpeech converts text into MP3 audio using the given voice, or the
// language's default voice when name is empty.
func synthesizeSpeech(text, voice string) ([]byte, error) {
	req := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: config.LanguageCode,
			Name:         voice,
		},
		AudioConfig: &texttospeech.AudioConfig{AudioEncoding: "MP3"},
	}

	resp, err := ttsService.Text.Synthesize(req).Do()
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(resp.AudioContent)
}

// listVoices returns the names of the voices available for the configured
// language.
func listVoices() []string {
	resp, err := ttsService.Voices.List().LanguageCode(config.LanguageCode).Do()
	if err != nil {
		log.Printf("Error listing voices: %v", err)
		return []string{}
	}

	var names []string
	for _, v := range resp.Voices {
		names = append(names, v.Name)
	}
	return names
}
