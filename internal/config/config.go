package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "A melody of love - Click to Open, M: Mute, R: Replay, Esc/Q: Quit"

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Start button dimensions
	ButtonWidth  = 420
	ButtonHeight = 84

	// Mute button, anchored to the bottom right corner
	MuteButtonRadius = 28
	MuteButtonMargin = 24

	// Message layout
	MessageMaxWidth   = 768
	MessageDelay      = 0.7
	MessageFadeIn     = 2.0
	MessageSlide      = 64
	MessageTopPercent = 0.2

	// Floating hearts
	HeartLayerOpacity = 0.25
	HeartPeakOpacity  = 0.8
	HeartRise         = 1.3
	HeartMinDuration  = 12
	HeartMaxDuration  = 27
	HeartMaxDelay     = 8

	// Background glow opacity, raised by the audio level
	GlowBaseOpacity = 0.12
	GlowAudioBoost  = 0.18
)
