package main

import (
	"flag"
	"fmt"

	"github.com/example/liv/internal/asset"
)

type infoCmd struct {
	*root
	fs   *flag.FlagSet
	path string
}

func (i *infoCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInfoCmd(args []string, r *root) (*infoCmd, error) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	c := &infoCmd{root: r.subcommand("info"), fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, &UsageError{of: c}
	}
	c.path = fs.Arg(fs.NArg() - 1)
	return c, nil
}

func (i *infoCmd) Run() error {
	img, err := asset.Load(i.path)
	if err != nil {
		return err
	}
	for _, f := range img.Metadata() {
		fmt.Fprintf(i.stdout, "%s: %s\n", f.Key, f.Value)
	}
	return nil
}
