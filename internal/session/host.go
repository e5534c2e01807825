package session

import (
	"os"
	"sync/atomic"
)

// HostRuntime is the environment embedding the app. It hands out the
// identity assertion and accepts the ready/expand call.
type HostRuntime interface {
	InitData() string
	Ready()
}

// StaticHost returns a fixed init data string.
type StaticHost struct {
	Data  string
	ready atomic.Int32
}

func (h *StaticHost) InitData() string { return h.Data }

func (h *StaticHost) Ready() { h.ready.Add(1) }

// ReadyCalls reports how many times Ready was called.
func (h *StaticHost) ReadyCalls() int { return int(h.ready.Load()) }

const EnvInitData = "MISTERMO_INIT_DATA"

// EnvHost reads the init data from an environment variable (EnvInitData
// when Var is empty). Used by the CLI.
type EnvHost struct {
	Var string
}

func (h EnvHost) InitData() string {
	name := h.Var
	if name == "" {
		name = EnvInitData
	}
	return os.Getenv(name)
}

func (EnvHost) Ready() {}
