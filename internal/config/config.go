package config

import "time"

const (
	// Carousel timing
	ScrollDelay    = 400 * time.Millisecond // Wheel cooldown, a hard deadline independent of animation
	RotateDuration = 500 * time.Millisecond // Rotation tween (power2.out)
	PlateDuration  = 600 * time.Millisecond // Detail plate enter animation (circ.out)

	// Drag and inertia
	InertiaTau      = 0.35                   // Exponential velocity decay time constant (s)
	SettleSpeed     = 8.0                    // Glide ends once angular speed drops below this (deg/s)
	FlingSpeed      = 30.0                   // Release speed below which no inertial glide starts (deg/s)
	MaxGlide        = 720.0                  // Cap on projected glide distance (deg)
	VelocityWindow  = 100 * time.Millisecond // Pointer samples older than this are ignored at release
	VelocitySamples = 8                      // Pointer sample ring capacity

	// Path layout
	PathStart = -0.25 // Phase offset in path units; -0.25 puts index 0 at the top

	// Wheel display
	AspectRatio = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	TargetFPS   = 30  // Target frames per second
	NarrowWidth = 80  // Below this width drag and wheel input are suppressed

	// App
	AppName    = "DISH-WHEEL"
	AppVersion = "1.0"
	DefaultLog = "dish-wheel.log"
)
