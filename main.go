package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/achilleasa/rigel/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rigel"
	app.Usage = "render scenes using Whitted-style ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:        "frame",
					Usage:       "render single frame",
					Description: `Render a single frame of the built-in scene.`,
					Flags: []cli.Flag{
						cli.IntFlag{
							Name:  "width",
							Value: 1024,
							Usage: "frame width",
						},
						cli.IntFlag{
							Name:  "height",
							Value: 768,
							Usage: "frame height",
						},
						cli.Float64Flag{
							Name:  "fov",
							Value: 1.05,
							Usage: "vertical field of view in radians",
						},
						cli.IntFlag{
							Name:  "tracers",
							Value: 0,
							Usage: "number of CPU tracers; defaults to the number of usable cores",
						},
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame (png or ppm)",
						},
						cli.IntFlag{
							Name:  "preview-width",
							Value: 0,
							Usage: "also write a downscaled png preview with this width",
						},
						cli.StringFlag{
							Name:  "upload",
							Value: "",
							Usage: "publish the rendered frame to an S3 bucket under this key",
						},
					},
					Action: cmd.RenderFrame,
				},
			},
		},
	}

	app.Run(os.Args)
}
