package main

import (
	"fmt"
	"io"
	"log"
	"os"

	. "github.com/ZenLiuCN/classpath"
	"github.com/ZenLiuCN/fn"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Usage = "classpath toolkit"
	app.Name = "Classpath"
	app.Description = "inspect and build classpath entries: locators, jar archives and code objects"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
	}
	app.Args = true
	app.Commands = []*cli.Command{
		{Name: "locate", Action: locate, Usage: "print the file locator of each path", Args: true},
		{Name: "list", Action: list, Usage: "list resource names under a directory or jar entry", Args: true},
		{Name: "pack",
			Action: pack,
			Usage:  "archive a directory into a jar",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output jar path, default <dir>.jar"},
			},
			Args: true,
		},
		{Name: "resolve",
			Action: resolve,
			Usage:  "resolve a resource name against a set of entries and write it to stdout",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "entry", Aliases: []string{"e"}, Usage: "directory or jar entry, repeatable"},
			},
			Args: true,
		},
		{Name: "compile",
			Action: compile,
			Usage:  "compile go sources into an objfile loadable by a code loader",
			Args:   true,
		},
		{Name: "symbols",
			Action: symbols,
			Usage:  "display symbols of objfile",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "pkg", Aliases: []string{"p"}, Usage: "package path or default main"},
			},
			Args: true,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func locate(ctx *cli.Context) (err error) {
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("missing target paths")
	}
	for _, p := range ctx.Args().Slice() {
		u, err := FileURL(p)
		if err != nil {
			return err
		}
		fmt.Println(u)
	}
	return
}

func list(ctx *cli.Context) (err error) {
	for _, p := range ctx.Args().Slice() {
		u, err := FileURL(p)
		if err != nil {
			return err
		}
		names, err := Entries(u)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
	}
	return
}

func pack(ctx *cli.Context) (err error) {
	dir := ctx.Args().First()
	if dir == "" {
		return fmt.Errorf("missing target directory")
	}
	out := ctx.String("out")
	if out == "" {
		out = dir + ".jar"
	}
	if err = Pack(dir, out); err == nil && ctx.Bool("debug") {
		log.Printf("packed %s into %s", dir, out)
	}
	return
}

func resolve(ctx *cli.Context) (err error) {
	name := ctx.Args().First()
	if name == "" {
		return fmt.Errorf("missing resource name")
	}
	c, err := NewSystemContext()
	if err != nil {
		return
	}
	for _, e := range ctx.StringSlice("entry") {
		if err = AddEntry(c, e); err != nil {
			return
		}
	}
	r, err := c.Current().Open(name)
	if err != nil {
		return
	}
	defer fn.IgnoreClose(r)
	_, err = io.Copy(os.Stdout, r)
	return
}

func compile(ctx *cli.Context) error {
	o := ctx.Args().Slice()
	if len(o) == 0 {
		return fmt.Errorf("missing target sources list")
	}
	return CompileObjects(ctx.Bool("debug"), o)
}

func symbols(ctx *cli.Context) (err error) {
	for _, s := range ctx.Args().Slice() {
		names, err := Inspect(s, ctx.String("pkg"))
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
	}
	return
}
