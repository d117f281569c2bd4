package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/achilleasa/rigel/frame"
	"github.com/achilleasa/rigel/renderer"
	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/tracer"
)

// Render a still frame of the built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Options{
		FrameW:     uint32(ctx.Int("width")),
		FrameH:     uint32(ctx.Int("height")),
		FOV:        float32(ctx.Float64("fov")),
		NumTracers: ctx.Int("tracers"),
	}

	r, err := renderer.NewDefault(scene.Default(), tracer.NaiveScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Notice("rendering frame")
	buffer, err := r.Render()
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	if err = writeFrame(buffer, imgFile); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)

	if previewW := ctx.Int("preview-width"); previewW > 0 {
		previewFile := previewFilename(imgFile)
		if err = writePreview(buffer, previewFile, uint32(previewW)); err != nil {
			return err
		}
		logger.Noticef("wrote preview to %s", previewFile)
	}

	if key := ctx.String("upload"); key != "" {
		if err = uploadFrame(buffer, key); err != nil {
			return err
		}
		logger.Noticef("uploaded frame as %s", key)
	}

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

// Encode the frame based on the output filename extension. PPM output is
// written as binary P6; everything else is encoded as PNG.
func writeFrame(buffer *frame.Buffer, imgFile string) error {
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(imgFile), ".ppm") {
		return frame.WritePPM(f, buffer)
	}
	return frame.WritePNG(f, buffer)
}

func writePreview(buffer *frame.Buffer, previewFile string, previewW uint32) error {
	f, err := os.Create(previewFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return frame.WritePreviewPNG(f, buffer, previewW)
}

func previewFilename(imgFile string) string {
	ext := filepath.Ext(imgFile)
	return strings.TrimSuffix(imgFile, ext) + "_preview.png"
}

// Publish the rendered frame to the object store bucket described by the
// S3_* environment variables (optionally loaded from a .env file).
func uploadFrame(buffer *frame.Buffer, key string) error {
	_ = godotenv.Load()

	uploader, err := frame.NewUploader(frame.UploaderConfigFromEnv())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = frame.WritePNG(&buf, buffer); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return uploader.Upload(ctx, buf.Bytes(), key, "image/png")
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
