package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cordshot/icongen/internal/pack"
	"github.com/cordshot/icongen/internal/render"
)

// Output file names inside Config.OutDir.
const (
	ICOName = "cordshot.ico"
	PNGName = "icon_256.png"
)

// standaloneSize is the raster also written on its own as a PNG.
const standaloneSize = 256

type App struct {
	Config Config
	Render pack.RenderFunc
	Logger Logger
}

func New(cfg Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}}
}

// Run renders every size, writes the PNG and the ICO and then the optional
// previews. It returns the summary lines to print on success.
func (app *App) Run(ctx context.Context) ([]string, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	renderFn := app.Render
	if renderFn == nil {
		r := render.NewIconRenderer()
		r.Logger = app.Logger
		renderFn = r.Render
	}
	sizes := app.Config.Sizes
	if len(sizes) == 0 {
		sizes = pack.DefaultSizes
	}
	if err := pack.Validate(sizes); err != nil {
		return nil, err
	}

	start := time.Now()
	rasters := make([]pack.Raster, 0, len(sizes))
	for _, size := range sizes {
		// Ctrl-C stops before the next canvas is allocated.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := pack.RenderOne(size, renderFn)
		if err != nil {
			app.Logger.Errorf("render", "%v", err)
			return nil, err
		}
		rasters = append(rasters, r)
	}
	app.Logger.Infof("render", "rendered %d sizes in %s", len(rasters), time.Since(start).Round(time.Millisecond))

	standalone, ok := pack.Find(rasters, standaloneSize)
	if !ok {
		return nil, fmt.Errorf("no %dpx raster to write %s", standaloneSize, PNGName)
	}
	pngPath := filepath.Join(app.Config.OutDir, PNGName)
	if err := pack.WritePNG(pngPath, standalone.Image); err != nil {
		app.Logger.Errorf("pack", "%v", err)
		return nil, err
	}
	app.Logger.Infof("pack", "wrote %s", pngPath)

	icoPath := filepath.Join(app.Config.OutDir, ICOName)
	if err := pack.WriteICO(icoPath, rasters); err != nil {
		app.Logger.Errorf("pack", "%v", err)
		return nil, err
	}
	app.logEntries(icoPath)

	if err := app.writePreviews(pack.Images(rasters)); err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("Created %s with sizes: %s", ICOName, FormatSizes(sizes)),
		fmt.Sprintf("Created %s for other uses", PNGName),
	}, nil
}

func (app *App) logEntries(icoPath string) {
	entries, err := pack.InspectFile(icoPath)
	if err != nil {
		app.Logger.Errorf("pack", "inspect %s: %v", icoPath, err)
		return
	}
	dims := make([]string, len(entries))
	for i, e := range entries {
		dims[i] = fmt.Sprintf("%dx%d", e.Width, e.Height)
	}
	app.Logger.Infof("pack", "wrote %s entries=[%s]", icoPath, strings.Join(dims, " "))
}

func (app *App) writePreviews(icons []*image.RGBA) error {
	if app.Config.Preview == "" && app.Config.Framebuffer == "" {
		return nil
	}
	sheet := render.PreviewSheet(icons)
	if app.Config.Preview != "" {
		if err := pack.WritePNG(app.Config.Preview, sheet); err != nil {
			app.Logger.Errorf("preview", "%v", err)
			return err
		}
		app.Logger.Infof("preview", "wrote contact sheet %s (%dx%d)", app.Config.Preview, sheet.Bounds().Dx(), sheet.Bounds().Dy())
	}
	if app.Config.Framebuffer != "" {
		if err := render.BlitToFramebuffer(app.Config.Framebuffer, sheet); err != nil {
			app.Logger.Errorf("fb", "%v", err)
			return err
		}
		app.Logger.Infof("fb", "blitted contact sheet to %s", app.Config.Framebuffer)
	}
	return nil
}

// FormatSizes renders a size list the way the summary line shows it.
func FormatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, size := range sizes {
		parts[i] = fmt.Sprint(size)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
