// npmsh is an interactive shell for poking the PMIC. It drives the full
// driver stack against the in-memory register simulator, so every command,
// event and the POF path can be exercised without hardware on the bench.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/sirupsen/logrus"

	"npmcore-go/drivers/npm13xx"
	"npmcore-go/drivers/npm13xx/simbus"
	"npmcore-go/services/config"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.WithError(err).Fatal("loading config")
		}
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	sh, err := newShell(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("bringing up device")
	}
	sh.run()
}

type shell struct {
	dev  *npm13xx.Device
	sim  *simbus.Sim
	log  *logrus.Logger
	done context.CancelFunc
}

func newShell(cfg config.Shell, log *logrus.Logger) (*shell, error) {
	sim := simbus.New(cfg.Address)
	dev := npm13xx.New(sim, npm13xx.Config{
		Address: cfg.Address,
		IntPin:  cfg.IntPin,
		POFPin:  cfg.POFPin,
		NTCBeta: cfg.NTCBeta,
	})
	if err := dev.Configure(); err != nil {
		return nil, err
	}

	sh := &shell{dev: dev, sim: sim, log: log}

	// The logger rides along as the device's opaque consumer context, so the
	// event callbacks need nothing beyond the handle they are given.
	dev.SetContext(log)
	for g := npm13xx.EventGroup(0); g < npm13xx.GroupCount; g++ {
		dev.OnEvent(g, logEvent)
	}

	intLine := &simbus.Line{}
	sim.OnAssert = intLine.Fire

	ctx, cancel := context.WithCancel(context.Background())
	sh.done = cancel

	disp := npm13xx.NewDispatcher(dev, intLine)
	disp.OnDiagnostic = func(err error) {
		log.WithError(err).Warn("event pass degraded")
	}
	if err := disp.Start(ctx); err != nil {
		cancel()
		return nil, err
	}

	if cfg.POFEnable {
		pol := npm13xx.PolarityLow
		if cfg.POFActiveHigh {
			pol = npm13xx.PolarityHigh
		}
		pofLine := &simbus.Line{}
		err := dev.RegisterPOFHandler(pofLine, npm13xx.POFConfig{
			Enable:       true,
			Polarity:     pol,
			Threshold_mV: cfg.POFThreshold_mV,
		}, func(*npm13xx.Device) {
			log.Warn("power fail: supply below threshold, shutting event lines down")
		})
		if err != nil {
			log.WithError(err).Warn("POF handler not registered")
		}
	}
	return sh, nil
}

// logEvent is the default registration for every group; its logging mirrors
// what a product would do with the bits it does not consume itself. The
// logger comes out of the device's consumer context.
func logEvent(d *npm13xx.Device, g npm13xx.EventGroup, mask uint8) {
	log, ok := d.Context().(*logrus.Logger)
	if !ok {
		return
	}
	entry := log.WithField("group", g.String())
	for bit := uint8(0); bit < 8; bit++ {
		if mask&(1<<bit) != 0 {
			entry.Info("event: ", npm13xx.EventBitName(g, bit))
		}
	}
}

func (sh *shell) run() {
	rl, err := readline.New("npmsh> ")
	if err != nil {
		sh.log.WithError(err).Fatal("readline")
	}
	defer rl.Close()
	defer sh.done()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens, err := shlex.Split(line)
		if err != nil {
			fail("unbalanced quoting")
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		switch tokens[0] {
		case "quit", "exit", "q":
			return
		case "help", "?":
			printHelp()
		default:
			sh.dispatch(tokens)
		}
	}
}

func printHelp() {
	fmt.Print(`Commands:
  buck     status|state|voltage|discharge|gpio ...
  ldsw     status|state|mode|voltage|discharge|softstart|gpio ...
  charger  module|termination|current|trickle|termcurrent|temp|status ...
  adc      meas|ntc ...
  pof      get
  gpio     mode|pull|drive ...
  led      mode|state ...
  ship     config|reset|mode ...
  vbusin   ilim|status ...
  timer    config|target|start|stop ...
  errlog   get
  events   raise <group> <mask>   (simulator hook)
  reset
  quit
`)
}

func fail(msg string) { fmt.Println("Error: " + msg + ".") }
func note(msg string) { fmt.Println("Info: " + msg + ".") }
