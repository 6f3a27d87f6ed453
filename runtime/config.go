package runtime

import "time"

const (
	DefaultTickRate        = 250 * time.Millisecond
	DefaultFrameRate       = 16 * time.Millisecond
	DefaultMaxMessages     = 100
	DefaultChannelCapacity = 256
)

// Config tunes a runtime. Zero fields fall back to the defaults;
// History zero means no snapshot history is kept.
type Config struct {
	// TickRate is the async runtime's update interval.
	TickRate time.Duration

	// FrameRate is the async runtime's render interval.
	FrameRate time.Duration

	// History caps the capture's snapshot history.
	History int

	// MaxMessages caps message fan-out per tick. Excess messages are
	// dropped with a single diagnostic.
	MaxMessages int

	// ChannelCapacity sizes the async message and error channels.
	ChannelCapacity int
}

func DefaultConfig() Config {
	return Config{
		TickRate:        DefaultTickRate,
		FrameRate:       DefaultFrameRate,
		MaxMessages:     DefaultMaxMessages,
		ChannelCapacity: DefaultChannelCapacity,
	}
}

func (c Config) normalized() Config {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.MaxMessages <= 0 {
		c.MaxMessages = DefaultMaxMessages
	}
	if c.ChannelCapacity <= 0 {
		c.ChannelCapacity = DefaultChannelCapacity
	}
	if c.History < 0 {
		c.History = 0
	}
	return c
}
