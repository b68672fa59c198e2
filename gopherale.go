// This file is part of Gopherale.
//
// Gopherale is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherale is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherale.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherale/agent"
	"github.com/jetsetilly/gopherale/ale"
	"github.com/jetsetilly/gopherale/codec"
	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
	"github.com/jetsetilly/gopherale/logger"
	"github.com/jetsetilly/gopherale/modalflag"
	"github.com/jetsetilly/gopherale/romloader"
	"github.com/jetsetilly/gopherale/settings"
	"github.com/jetsetilly/gopherale/statsview"
	"github.com/jetsetilly/gopherale/version"

	// engine backends register themselves with the engine package. the
	// native backend is only compiled with the ale build tag
	_ "github.com/jetsetilly/gopherale/engine/dummy"
	_ "github.com/jetsetilly/gopherale/engine/native"
)

// exit values.
const (
	exitOK      = 0
	exitParse   = 10
	exitRuntime = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env, err := settings.FromEnvironment()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParse)
	}

	os.Exit(launch(ctx, os.Args[1:], env, os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the process.
func launch(ctx context.Context, args []string, env settings.Environment, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "RESUME", "BACKENDS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, env, output)
	case "RESUME":
		err = resume(ctx, md, env, output)
	case "BACKENDS":
		fmt.Fprintln(output, strings.Join(engine.Backends(), "\n"))
	case "VERSION":
		v, r := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitRuntime
	}

	return exitOK
}

// Sentinal error patterns for the command.
const (
	badArgs      = "gopherale: %s mode requires %s"
	unknownCodec = "gopherale: unknown codec (%s)"
	unknownAgent = "gopherale: unknown agent (%s)"
)

// session flags common to all modes that play a game.
type session struct {
	env settings.Environment

	engine    *string
	codec     *string
	agent     *string
	seed      *uint64
	episodes  *int
	maxSteps  *int
	png       *string
	save      *string
	memviz    *string
	statsview *bool
	log       *bool
}

func addSessionFlags(md *modalflag.Modes, env settings.Environment) *session {
	s := &session{
		env:      env,
		engine:   md.AddString("engine", env.Engine, "engine backend (see BACKENDS mode)"),
		codec:    md.AddString("codec", env.Codec, "format of saved games: wire, cbor"),
		agent:    md.AddString("agent", "random", "agent choosing the actions: random, noop, fire"),
		seed:     md.AddUint64("seed", 0, "seed for the random agent"),
		episodes: md.AddInt("episodes", 1, "number of episodes to play"),
		maxSteps: md.AddInt("maxsteps", 0, "maximum number of steps in an episode (0 for no limit)"),
		png:      md.AddString("png", "", "save the final screen to a PNG file"),
		save:     md.AddString("save", "", "save the game to a file after playing"),
		memviz:   md.AddString("memviz", "", "write a graphviz file of the game session"),
		log:      md.AddBool("log", false, "echo log entries to the terminal"),
	}
	if statsview.Available() {
		s.statsview = md.AddBool("statsview", false, "run the stats server")
	}
	return s
}

func (s *session) backend() (engine.Backend, error) {
	if *s.engine == "" {
		return engine.Default()
	}
	return engine.Lookup(*s.engine)
}

func (s *session) format() (codec.Format, error) {
	f := codec.Lookup(strings.ToLower(*s.codec))
	if f == nil {
		return nil, curated.Errorf(unknownCodec, *s.codec)
	}
	return f, nil
}

func (s *session) newAgent() (agent.Agent, error) {
	switch strings.ToLower(*s.agent) {
	case "random":
		return agent.NewRandom(*s.seed), nil
	case "noop":
		return agent.NewFixed(ale.Noop), nil
	case "fire":
		return agent.NewFixed(ale.Fire), nil
	}
	return nil, curated.Errorf(unknownAgent, *s.agent)
}

// prepare the ambient features before the game is played.
func (s *session) prepare(output io.Writer) func() {
	if *s.log {
		logger.SetEcho(output)
	}
	if s.statsview != nil && *s.statsview {
		return statsview.Launch(output)
	}
	return func() {}
}

// play the game with the agent and then save the results as requested.
func (s *session) play(ctx context.Context, g *ale.Game, output io.Writer) error {
	a, err := s.newAgent()
	if err != nil {
		return err
	}

	results, err := agent.Play(ctx, g, a, *s.episodes, *s.maxSteps)
	for i, r := range results {
		fmt.Fprintf(output, "episode %d: %s\n", i+1, r)
	}
	if err != nil {
		return err
	}

	if *s.png != "" {
		if err := g.SaveScreenPNG(*s.png); err != nil {
			return err
		}
	}

	if *s.memviz != "" {
		f, err := os.Create(*s.memviz)
		if err != nil {
			return err
		}
		memviz.Map(f, g)
		if err := f.Close(); err != nil {
			return err
		}
	}

	if *s.save != "" {
		f, err := s.format()
		if err != nil {
			return err
		}
		data, err := ale.MarshalGame(g, f)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*s.save, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(output, "game saved to %s (%s)\n", *s.save, f.Name())
	}

	return nil
}

func run(ctx context.Context, md *modalflag.Modes, env settings.Environment, output io.Writer) error {
	md.NewMode()
	s := addSessionFlags(md, env)
	options := md.AddString("options", "", "engine options (key::value; key::value)")
	romCache := md.AddString("romcache", env.ROMCache, "directory for ROMs extracted from archives")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(badArgs, "RUN", "a single rom file")
	}

	// environment options are applied first so that command line options
	// take precedence
	set, err := settings.Parse(env.Options)
	if err != nil {
		return err
	}
	cmdline, err := settings.Parse(*options)
	if err != nil {
		return err
	}
	set = append(set, cmdline...)

	path, err := romloader.Materialise(md.GetArg(0), *romCache, nil)
	if err != nil {
		return err
	}

	b, err := s.backend()
	if err != nil {
		return err
	}

	defer s.prepare(output)()

	a, err := ale.NewWithBackend(b)
	if err != nil {
		return err
	}
	set.Apply(a)

	g, err := a.LoadROM(path)
	if err != nil {
		discard(a)
		return err
	}
	defer g.Close()

	fmt.Fprintf(output, "%s: %s (%d legal actions)\n", b.Name(), g.ROMPath(), len(g.LegalActionSet()))

	return s.play(ctx, g, output)
}

// discard closes an ALE after a failure. the failure is what the caller
// reports so a close error is only logged.
func discard(a *ale.ALE) {
	if err := a.Close(); err != nil {
		logger.Log(logger.Allow, "gopherale", err)
	}
}

func resume(ctx context.Context, md *modalflag.Modes, env settings.Environment, output io.Writer) error {
	md.NewMode()
	s := addSessionFlags(md, env)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(badArgs, "RESUME", "a single save file")
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	f, err := s.format()
	if err != nil {
		return err
	}

	b, err := s.backend()
	if err != nil {
		return err
	}

	defer s.prepare(output)()

	g, err := ale.UnmarshalGameWithBackend(b, data, f)
	if err != nil {
		return err
	}
	defer g.Close()

	fmt.Fprintf(output, "%s: resumed %s at frame %d\n", b.Name(), g.ROMPath(), g.FrameNumber())

	return s.play(ctx, g, output)
}
