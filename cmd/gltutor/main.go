package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"gltutor/internal/app"
	"gltutor/internal/assets"
	"gltutor/internal/config"
	"gltutor/internal/lessons"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gltutor:", err)
		os.Exit(1)
	}
}

// options are the command-line overrides; zero values leave config untouched
type options struct {
	configPath string
	list       bool
	lesson     string
	shaders    string
	texture    string
	logLevel   string
	fps        int
	vsync      string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("gltutor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "gltutor.yml", "YAML config file; missing is fine")
	fs.BoolVar(&o.list, "list", false, "list lessons and exit")
	fs.StringVar(&o.lesson, "lesson", "", "lesson to run ("+strings.Join(lessons.Names(), ", ")+")")
	fs.StringVar(&o.shaders, "shaders", "", "load shaders from this directory and reload them on change")
	fs.StringVar(&o.texture, "texture", "", "image used by the textured lessons")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	fs.IntVar(&o.fps, "fps", -1, "frame cap, 0 for unlimited")
	fs.StringVar(&o.vsync, "vsync", "", "on or off")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() == 1 && o.lesson == "" {
		o.lesson = fs.Arg(0)
	} else if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, nil
}

func (o options) apply(s *config.Settings) error {
	if o.lesson != "" {
		s.Lesson = o.lesson
	}
	if o.shaders != "" {
		s.ShaderDir = o.shaders
	}
	if o.texture != "" {
		s.Texture = o.texture
	}
	if o.logLevel != "" {
		s.LogLevel = o.logLevel
	}
	if o.fps >= 0 {
		s.FPSLimit = o.fps
	}
	switch strings.ToLower(o.vsync) {
	case "":
	case "on", "true", "1":
		s.Window.VSync = true
	case "off", "false", "0":
		s.Window.VSync = false
	default:
		return fmt.Errorf("invalid -vsync value %q", o.vsync)
	}
	s.Normalize()
	return nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

func printLessons(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, l := range lessons.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", l.Order, l.Name, l.Concept)
	}
	tw.Flush()
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.list {
		printLessons(stdout)
		return nil
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := opts.apply(&settings); err != nil {
		return err
	}

	level, err := parseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	lesson, err := lessons.Lookup(settings.Lesson)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(settings.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()
	log.Info("window created", "width", settings.Window.Width, "height", settings.Window.Height,
		"vsync", settings.Window.VSync)

	a, err := app.New(window, settings, lesson, assets.ShadersFrom(settings.ShaderDir), log)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Run()
	return nil
}
