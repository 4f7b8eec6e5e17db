package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/catalog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Source      catalog.Source
	Profiles    catalog.ProfileRegistry
	Fetcher     catalog.Fetcher
	Detector    catalog.LayoutDetector
	ProfileName string
	JSON        bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Profile     string        `short:"p" default:"likemanga" env:"CATALOG_PROFILE" help:"Site profile name"`
	ProfileFile string        `type:"existingfile" help:"Load a site profile from a YAML file and select it"`
	Timeout     time.Duration `default:"10s" help:"HTTP request timeout"`
	Rate        time.Duration `default:"2s" help:"Minimum interval between requests to the same host"`
	UserAgent   string        `help:"User-Agent header (defaults to a desktop browser)"`
	Cloudflare  bool          `help:"Use browser-like TLS settings for Cloudflare-fronted sites"`
	Debug       bool          `help:"Log every request to stderr"`
	JSON        bool          `help:"Write JSON instead of text"`

	Popular      PopularCmd  `cmd:"" help:"List the most-viewed entries"`
	Latest       LatestCmd   `cmd:"" help:"List recently updated entries"`
	Search       SearchCmd   `cmd:"" help:"Search entries by title or slug:<slug>"`
	Detail       DetailCmd   `cmd:"" help:"Show the metadata of an entry"`
	Chapters     ChaptersCmd `cmd:"" help:"List the chapters of an entry"`
	Pages        PagesCmd    `cmd:"" help:"List the pages of a chapter"`
	Image        ImageCmd    `cmd:"" help:"Resolve the image URL of a page"`
	Walk         WalkCmd     `cmd:"" help:"Follow a listing through all its pages"`
	Resolve      ResolveCmd  `cmd:"" help:"Turn an entry URL into a search query"`
	Detect       DetectCmd   `cmd:"" help:"Suggest a built-in profile for a listing page"`
	Profiles     ProfilesCmd `cmd:"" help:"List available site profiles"`
	ProfileGroup ProfileCmd  `cmd:"" name:"profile" help:"Inspect site profiles"`
}

// PopularCmd is the "popular" subcommand.
type PopularCmd struct {
	Page int `arg:"" optional:"" default:"1" help:"Page number"`
}

// LatestCmd is the "latest" subcommand.
type LatestCmd struct {
	Page int `arg:"" optional:"" default:"1" help:"Page number"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search text, or slug:<slug> for a direct lookup"`
	Page  int    `short:"n" default:"1" help:"Page number"`
}

// DetailCmd is the "detail" subcommand.
type DetailCmd struct {
	ID string `arg:"" help:"Entry identifier (path on the site)"`
}

// ChaptersCmd is the "chapters" subcommand.
type ChaptersCmd struct {
	ID string `arg:"" help:"Entry identifier (path on the site)"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	ChapterID string `arg:"" help:"Chapter identifier (path on the site)"`
}

// ImageCmd is the "image" subcommand.
type ImageCmd struct {
	PageURL string `arg:"" help:"Page URL from the pages command"`
}

// WalkCmd is the "walk" subcommand.
type WalkCmd struct {
	Mode        string `arg:"" enum:"popular,latest,search" help:"Listing to walk (popular, latest, search)"`
	Query       string `short:"q" help:"Search text for the search listing"`
	MaxPages    int    `default:"50" help:"Stop after this many pages"`
	MaxStale    int    `default:"2" help:"Stop after this many pages without new entries"`
	Details     bool   `short:"d" help:"Fetch the detail record of every entry"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent detail fetches"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	URL string `arg:"" help:"Entry URL"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	URL string `arg:"" help:"Listing page URL"`
}

// ProfilesCmd is the "profiles" subcommand.
type ProfilesCmd struct{}

// ProfileCmd groups the "profile" subcommands.
type ProfileCmd struct {
	Dump ProfileDumpCmd `cmd:"" help:"Print a profile as YAML"`
}

// ProfileDumpCmd is the "profile dump" subcommand.
type ProfileDumpCmd struct {
	Name string `arg:"" optional:"" help:"Profile name (defaults to the selected profile)"`
}
