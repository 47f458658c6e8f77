package main

// Sample is one benchmark prompt.
type Sample struct {
	Name   string
	Prompt string
}

// Samples covers short, medium, and detailed shader descriptions.
var Samples = []Sample{
	{
		Name:   "short",
		Prompt: "a slowly rotating color wheel",
	},
	{
		Name:   "plasma",
		Prompt: "a classic demoscene plasma effect with shifting pink and cyan bands",
	},
	{
		Name:   "waves",
		Prompt: "animated ocean waves seen from above, deep blue with white foam highlights where the waves peak",
	},
	{
		Name:   "tunnel",
		Prompt: "an endless glowing tunnel receding into the distance, ring segments pulsing in sync with time, warm orange fading to black at the center",
	},
	{
		Name: "detailed",
		Prompt: "A starfield flythrough: white points of varying brightness streaking outward " +
			"from the center of the screen, speed increasing with distance from center, " +
			"with a subtle purple nebula haze in the background that slowly drifts. " +
			"The stars should twinkle slightly and the overall motion should loop smoothly.",
	},
}
