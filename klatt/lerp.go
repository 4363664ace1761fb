package klatt

// lerpFrame linearly interpolates every numeric field of two frames by
// ratio (0 returns a, 1 returns b), used by the sample loop's
// cross-fade window.
func lerpFrame(a, b Frame, ratio float64) Frame {
	return Frame{
		VoicePitch:               lerp(a.VoicePitch, b.VoicePitch, ratio),
		VibratoPitchOffset:       lerp(a.VibratoPitchOffset, b.VibratoPitchOffset, ratio),
		VibratoSpeed:             lerp(a.VibratoSpeed, b.VibratoSpeed, ratio),
		VoiceTurbulenceAmplitude: lerp(a.VoiceTurbulenceAmplitude, b.VoiceTurbulenceAmplitude, ratio),
		GlottalOpenQuotient:      lerp(a.GlottalOpenQuotient, b.GlottalOpenQuotient, ratio),
		VoiceAmplitude:           lerp(a.VoiceAmplitude, b.VoiceAmplitude, ratio),
		AspirationAmplitude:      lerp(a.AspirationAmplitude, b.AspirationAmplitude, ratio),
		CF1:                      lerp(a.CF1, b.CF1, ratio),
		CF2:                      lerp(a.CF2, b.CF2, ratio),
		CF3:                      lerp(a.CF3, b.CF3, ratio),
		CF4:                      lerp(a.CF4, b.CF4, ratio),
		CF5:                      lerp(a.CF5, b.CF5, ratio),
		CF6:                      lerp(a.CF6, b.CF6, ratio),
		CFN0:                     lerp(a.CFN0, b.CFN0, ratio),
		CFNP:                     lerp(a.CFNP, b.CFNP, ratio),
		CB1:                      lerp(a.CB1, b.CB1, ratio),
		CB2:                      lerp(a.CB2, b.CB2, ratio),
		CB3:                      lerp(a.CB3, b.CB3, ratio),
		CB4:                      lerp(a.CB4, b.CB4, ratio),
		CB5:                      lerp(a.CB5, b.CB5, ratio),
		CB6:                      lerp(a.CB6, b.CB6, ratio),
		CBN0:                     lerp(a.CBN0, b.CBN0, ratio),
		CBNP:                     lerp(a.CBNP, b.CBNP, ratio),
		CANP:                     lerp(a.CANP, b.CANP, ratio),
		FricationAmplitude:       lerp(a.FricationAmplitude, b.FricationAmplitude, ratio),
		PF1:                      lerp(a.PF1, b.PF1, ratio),
		PF2:                      lerp(a.PF2, b.PF2, ratio),
		PF3:                      lerp(a.PF3, b.PF3, ratio),
		PF4:                      lerp(a.PF4, b.PF4, ratio),
		PF5:                      lerp(a.PF5, b.PF5, ratio),
		PF6:                      lerp(a.PF6, b.PF6, ratio),
		PB1:                      lerp(a.PB1, b.PB1, ratio),
		PB2:                      lerp(a.PB2, b.PB2, ratio),
		PB3:                      lerp(a.PB3, b.PB3, ratio),
		PB4:                      lerp(a.PB4, b.PB4, ratio),
		PB5:                      lerp(a.PB5, b.PB5, ratio),
		PB6:                      lerp(a.PB6, b.PB6, ratio),
		PA1:                      lerp(a.PA1, b.PA1, ratio),
		PA2:                      lerp(a.PA2, b.PA2, ratio),
		PA3:                      lerp(a.PA3, b.PA3, ratio),
		PA4:                      lerp(a.PA4, b.PA4, ratio),
		PA5:                      lerp(a.PA5, b.PA5, ratio),
		PA6:                      lerp(a.PA6, b.PA6, ratio),
		ParallelBypass:           lerp(a.ParallelBypass, b.ParallelBypass, ratio),
		PreFormantGain:           lerp(a.PreFormantGain, b.PreFormantGain, ratio),
		OutputGain:               lerp(a.OutputGain, b.OutputGain, ratio),
		EndVoicePitch:            lerp(a.EndVoicePitch, b.EndVoicePitch, ratio),
	}
}
