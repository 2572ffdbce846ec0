package main

import (
	"context"
	"io"

	"github.com/fwojciec/seoaudit"
	"github.com/fwojciec/seoaudit/audit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config seoaudit.Config
	Runner *audit.Runner
	Store  seoaudit.ResultStore
	Loader seoaudit.Loader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string `help:"Path to YAML config file" type:"path"`
	ResultsDir  string `help:"Directory for audit result records" type:"path"`
	BaseDomain  string `help:"Site domain for internal/external link classification"`
	MinWords    int    `default:"-1" help:"Minimum word count before THIN_CONTENT triggers"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent audit limit for bulk runs"`
	Verbose     bool   `short:"v" help:"Enable structured logging of fetches and store writes"`

	Audit   AuditCmd   `cmd:"" help:"Audit a single article URL"`
	Bulk    BulkCmd    `cmd:"" help:"Audit a list of URLs concurrently"`
	File    FileCmd    `cmd:"" help:"Audit a local HTML file"`
	Show    ShowCmd    `cmd:"" help:"Show the latest audit record for a source"`
	History HistoryCmd `cmd:"" help:"List all retained audit records for a source"`
	Approve ApproveCmd `cmd:"" help:"Approve a pending suggestion"`
	Reject  RejectCmd  `cmd:"" help:"Reject a pending suggestion"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	URL string `arg:"" help:"Article URL to audit"`
}

// BulkCmd is the "bulk" subcommand.
type BulkCmd struct {
	File string `arg:"" help:"File containing one URL per line" type:"path"`
}

// FileCmd is the "file" subcommand.
type FileCmd struct {
	Path string `arg:"" help:"Local HTML file to audit" type:"path"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Source      string `arg:"" help:"Source URL or file path"`
	Fingerprint string `help:"Specific content fingerprint (defaults to latest)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Source string `arg:"" help:"Source URL or file path"`
}

// ApproveCmd is the "approve" subcommand.
type ApproveCmd struct {
	Source       string `arg:"" help:"Source URL or file path"`
	SuggestionID string `arg:"" help:"Suggestion ID to approve"`
}

// RejectCmd is the "reject" subcommand.
type RejectCmd struct {
	Source       string `arg:"" help:"Source URL or file path"`
	SuggestionID string `arg:"" help:"Suggestion ID to reject"`
}
