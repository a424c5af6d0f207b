package model

import "fmt"

// Config is an On/Off command line switch. It implements flag.Value.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON": On,
	"On": On,
	"on": On,
	"1":  On,

	"OFF": Off,
	"Off": Off,
	"off": Off,
	"0":   Off,
}

func NewConfig(s string) Config {
	return configName[s]
}

func (c Config) String() string {
	if c {
		return "On"
	}
	return "Off"
}

func (c *Config) Set(s string) error {
	v, ok := configName[s]
	if !ok {
		return fmt.Errorf("invalid switch %q, want On or Off", s)
	}
	*c = v
	return nil
}
