// Command gslengine runs a GSL project fixture: gslengine FILE -n
// PROJECT-NAME [-v] [-p PORT].
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/isgasho/gsl8engine/controlpanel"
	"github.com/isgasho/gsl8engine/gml"
	"github.com/isgasho/gsl8engine/project"
	"github.com/isgasho/gsl8engine/replay"
)

func main() {
	app := &cli.Command{
		Name:  "gslengine",
		Usage: "Run a GSL project fixture",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Project name used to name the control-panel replay recording"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log diagnostics as the fixture loads and runs"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Start the control-panel TCP listener on this port"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			if file == "" {
				return cli.Exit("gslengine: a project fixture FILE is required", 1)
			}
			return run(file, cmd.String("name"), cmd.Bool("verbose"), int(cmd.Int("port")))
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gslengine: %v\n", err)
		os.Exit(1)
	}
}

func run(file, projectName string, verbose bool, port int) error {
	logger := log.New(os.Stderr, "gslengine: ", log.LstdFlags)

	assets, placements, err := project.Load(file)
	if err != nil {
		return err
	}
	if verbose {
		logger.Printf("loaded %s instance placement(s) from %s", humanize.Comma(int64(len(placements))), file)
	}

	cfg := gml.DefaultEngineConfig()
	eng := gml.NewEngine(assets, cfg, logger)
	eng.Dispatch = gml.DefaultDispatch()
	eng.Input = gml.NewDefaultInputManager()

	for _, p := range placements {
		h, err := eng.CreateInstance(p.ObjectID, gml.Real(p.X), gml.Real(p.Y))
		if err != nil {
			return fmt.Errorf("spawning instance of object %d: %w", p.ObjectID, err)
		}
		if err := eng.RunEvent(h, 0, 0); err != nil { // ev_create, 0
			return fmt.Errorf("create event for object %d: %w", p.ObjectID, err)
		}
	}
	if verbose {
		logger.Printf("%s instance(s) live", humanize.Comma(int64(eng.Instances.CountAll())))
	}

	if port <= 0 {
		return nil
	}
	return serveControlPanel(eng, projectName, port, logger)
}

// serveControlPanel opens the loopback listener a TAS control panel
// connects to, handshakes, then drives the engine frame-by-frame,
// recording every frame into a replay session.
func serveControlPanel(eng *gml.Engine, projectName string, port int, logger *log.Logger) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("control panel: listen %s: %w", addr, err)
	}
	defer ln.Close()
	logger.Printf("control panel listening on %s", addr)

	store, err := replay.Open(projectName + ".replay.sqlite")
	if err != nil {
		return err
	}
	defer store.Close()
	session, err := store.NewSession(projectName)
	if err != nil {
		return err
	}

	conn, err := ln.Accept()
	if err != nil {
		return err
	}
	defer conn.Close()

	kind, payload, err := controlpanel.ReadFrame(conn)
	if err != nil {
		return fmt.Errorf("control panel: handshake: %w", err)
	}
	if kind != controlpanel.KindHello {
		return fmt.Errorf("control panel: expected Hello, got kind %d", kind)
	}
	hello, err := controlpanel.DecodeHello(payload)
	if err != nil {
		return fmt.Errorf("control panel: decoding Hello: %w", err)
	}
	logger.Printf("control panel connected: filename=%q keys=%v buttons=%v", hello.Filename, hello.KeysRequested, hello.MouseButtonsRequested)

	var frameIndex int64
	for {
		kind, payload, err := controlpanel.ReadFrame(conn)
		if err != nil {
			return nil // peer closed the connection; session ends cleanly
		}
		switch kind {
		case controlpanel.KindKeyState:
			ks, err := controlpanel.DecodeKeyState(payload)
			if err != nil {
				return err
			}
			if ks.Down {
				eng.Input.SetKeyKey(ks.Key)
			} else if eng.Input.KeyKey() == ks.Key {
				eng.Input.SetKeyKey(0)
			}

		case controlpanel.KindMouseState:
			ms, err := controlpanel.DecodeMouseState(payload)
			if err != nil {
				return err
			}
			if ms.Down {
				eng.Input.SetMouseButton(ms.Button)
			} else if eng.Input.MouseButton() == ms.Button {
				eng.Input.SetMouseButton(0)
			}

		case controlpanel.KindSpoofTime:
			st, err := controlpanel.DecodeSpoofTime(payload)
			if err != nil {
				return err
			}
			eng.SpoofMillis = &st.Millis

		case controlpanel.KindStep:
			it := eng.Instances.IterByInsertion()
			for h, ok := it.Next(); ok; h, ok = it.Next() {
				if err := eng.RunEvent(h, 3, 0); err != nil { // ev_step, normal
					return err
				}
			}
			millis := int64(0)
			if eng.SpoofMillis != nil {
				millis = *eng.SpoofMillis
			}
			if err := store.AppendFrame(session, replay.Frame{Index: frameIndex, SpoofMillis: millis}); err != nil {
				return err
			}
			frameIndex++
		}
	}
}
