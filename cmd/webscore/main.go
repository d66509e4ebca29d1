package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/RobertCam/webscore"
	"github.com/RobertCam/webscore/config"
	"github.com/RobertCam/webscore/reports"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func getConfig(c *cli.Context) (*config.Config, error) {
	filename := c.String("config")
	if filename == "" {
		return config.Default(), nil
	}
	return config.Get(filename)
}

func main() {
	configFlag := &cli.StringFlag{
		Name:  "config",
		Usage: "path to a yaml config file",
	}
	app := &cli.App{
		Name:  "webscore",
		Usage: "score pages on how well they are structured for AI search",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the scoring service",
				Flags: []cli.Flag{configFlag},
				Action: func(c *cli.Context) error {
					conf, errConf := getConfig(c)
					if errConf != nil {
						return errConf
					}
					s, errService := webscore.NewService(conf)
					if errService != nil {
						return errService
					}
					spew.Dump(conf)
					log.Println("listening on", conf.Addr)
					return http.ListenAndServe(conf.Addr, s.Handler())
				},
			},
			{
				Name:      "analyze",
				Usage:     "score a single page and print the scorecard",
				ArgsUsage: "<url>",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{
						Name:  "format",
						Usage: "report, findings or yaml",
						Value: "report",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("usage: webscore analyze <url>", 1)
					}
					conf, errConf := getConfig(c)
					if errConf != nil {
						return errConf
					}
					s, errService := webscore.NewService(conf)
					if errService != nil {
						return errService
					}
					scorecard, errAnalyze := s.Analyzer.Analyze(c.Args().First())
					if errAnalyze != nil {
						return errAnalyze
					}
					switch c.String("format") {
					case "yaml":
						yamlBytes, errYaml := yaml.Marshal(scorecard)
						if errYaml != nil {
							return errYaml
						}
						fmt.Println(string(yamlBytes))
					case "findings":
						reports.WriteFindings(os.Stdout, s.Analyzer.Rubric(), scorecard)
					default:
						reports.WriteScorecard(os.Stdout, scorecard)
					}
					return nil
				},
			},
		},
	}
	if errRun := app.Run(os.Args); errRun != nil {
		fmt.Println(errRun)
		os.Exit(1)
	}
}
