package main

import "github.com/gophone/speechplayer/voice"

func voicePresetsByName() map[string]voice.Preset {
	return voice.DefaultPresets()
}
