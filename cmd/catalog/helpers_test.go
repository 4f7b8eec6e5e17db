package main_test

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/fwojciec/catalog"
	main "github.com/fwojciec/catalog/cmd/catalog"
	"github.com/fwojciec/catalog/goquery"
)

// newDeps returns dependencies over src with captured output.
func newDeps(src catalog.Source) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:         context.Background(),
		Stdout:      stdout,
		Stderr:      stderr,
		Logger:      slog.New(slog.DiscardHandler),
		Source:      src,
		Profiles:    goquery.NewDefaultRegistry(),
		ProfileName: goquery.DefaultProfile,
	}, stdout, stderr
}

func stub(id, title string) *catalog.EntryStub {
	return &catalog.EntryStub{Identifier: id, Title: title}
}
