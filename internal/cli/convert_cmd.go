// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert_cmd.go - Convert command implementation.
//
// Command: convert <kind|all> [flags]
// Short:   Flatten FMC export documents into tables
// Aliases: c
//
// Flags:
//   --input, -i FILE      Export document (single kind only)
//   --output, -o FILE     Output file (single kind only)
//   --dir, -d DIR         Export directory
//   --format, -f FORMAT   csv, json, md or html
//   --delimiter CHAR      CSV field delimiter
//
// Examples:
//   fmc2csv convert rules
//   fmc2csv convert all --format md
//   fmc2csv convert networks -i dump.json -o networks.csv
package cli

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fmc2csv/fmc2csv/internal/config"
	"github.com/fmc2csv/fmc2csv/internal/export"
	"github.com/fmc2csv/fmc2csv/internal/flatten"
)

var convertFlags = []string{"input", "i", "output", "o", "dir", "d", "format", "f", "delimiter"}

const convertUsage = "fmc2csv convert <accessrules|networkgroups|networks|portobjectgroups|all> [--format csv|json|md|html]"

// HandleConvert handles the "convert" command.
func HandleConvert(args Args) error {
	p := NewArgParser(args.Raw)
	if unknown := p.Unknown(convertFlags...); len(unknown) > 0 {
		return NewValidationErrorWithExample("flag", "--"+unknown[0], "unknown flag for convert", convertUsage)
	}

	target := p.Subcommand()
	if target == "" {
		return ErrMissingArgument("kind", convertUsage)
	}
	if p.PositionalCount() > 1 {
		return NewValidationErrorWithExample("argument", p.Positional(1), "unexpected argument", convertUsage)
	}

	cfg, logger, err := loadRuntime(args)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if dir := p.Flag("dir", "d"); dir != "" {
		cfg.Export.Dir = dir
	}
	opts, err := exportOptions(cfg, p, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	var data ConvertData
	if strings.EqualFold(target, "all") {
		if p.HasFlag("input") || p.HasFlag("i") || p.HasFlag("output") || p.HasFlag("o") {
			return NewValidationErrorWithExample("flag", "", "--input and --output name a single kind", "fmc2csv convert all --dir ./export")
		}
		data.Converted, data.Skipped, err = convertAll(cfg, opts)
	} else {
		var res *export.Result
		res, err = convertOne(cfg, p, target, opts)
		if res != nil {
			data.Converted = []*export.Result{res}
		}
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	data.DurationMs = elapsed.Milliseconds()

	if args.JSON {
		return NewJSONResponse("convert", data).Print()
	}
	if !args.Quiet {
		printConvertSummary(data, elapsed)
	}
	return nil
}

func convertOne(cfg *config.Config, p *ArgParser, target string, opts *export.Options) (*export.Result, error) {
	kind, err := flatten.ParseKind(target)
	if err != nil {
		return nil, NewValidationErrorWithExample("kind", target, "unknown object kind", convertUsage)
	}

	src := p.Flag("input", "i")
	if src == "" {
		src = cfg.SourcePath(kind)
	}
	dest := p.Flag("output", "o")
	if dest == "" {
		dest = cfg.DestinationPath(kind)
	}

	res, err := export.Convert(src, dest, kind, opts)
	if err != nil {
		return nil, missingExportError(err)
	}
	return res, nil
}

func convertAll(cfg *config.Config, opts *export.Options) ([]*export.Result, []flatten.Kind, error) {
	opts.Targets = make(map[flatten.Kind]export.Target, len(flatten.Kinds()))
	for _, kind := range flatten.Kinds() {
		opts.Targets[kind] = export.Target{
			Source:      cfg.SourcePath(kind),
			Destination: cfg.DestinationPath(kind),
		}
	}

	batch, err := export.ConvertAll(cfg.Export.Dir, opts)
	if err != nil {
		return nil, nil, missingExportError(err)
	}
	if len(batch.Converted) == 0 {
		return nil, batch.Skipped, &NotFoundError{
			Resource: "export documents",
			ID:       cfg.Export.Dir,
			Hint:     "Run the FMC export step first; expected files like " + flatten.KindAccessRules.SourceFile() + ".",
		}
	}
	return batch.Converted, batch.Skipped, nil
}

// exportOptions merges --format and --delimiter over the configuration.
func exportOptions(cfg *config.Config, p *ArgParser, logger *zap.Logger) (*export.Options, error) {
	opts := export.DefaultOptions()
	opts.Logger = logger

	format := strings.ToLower(p.Flag("format", "f"))
	if format == "" {
		format = strings.ToLower(cfg.Export.Format)
	}
	if format == "markdown" {
		format = export.FormatMarkdown
	}
	supported := false
	for _, f := range export.Formats() {
		if f == format {
			supported = true
		}
	}
	if !supported {
		return nil, ErrUnsupportedFormat(format, export.Formats())
	}
	opts.Format = format

	delim := p.FlagOrDefault("delimiter", cfg.Export.Delimiter)
	r, err := config.ParseDelimiter(delim)
	if err != nil {
		return nil, NewValidationError("delimiter", delim, err.Error())
	}
	opts.Delimiter = r

	return opts, nil
}

func printConvertSummary(data ConvertData, elapsed time.Duration) {
	for _, res := range data.Converted {
		fmt.Fprintf(stdout, "%s %s %s\n",
			RenderStatus("ok"),
			res.Message(),
			DimStyle.Render("("+pluralize(res.Rows, "row", "rows")+")"))
		if res.Truncated {
			fmt.Fprintf(stderr, "%s %s holds fewer items than its paging count; re-run the export with a larger page limit\n",
				RenderStatus("warn"), res.Source)
		}
	}
	if len(data.Skipped) > 0 {
		fmt.Fprintf(stdout, "%s\n", DimStyle.Render("Skipped (no export file): "+joinKinds(data.Skipped)))
	}
	if len(data.Converted) > 1 {
		fmt.Fprintln(stdout, RenderSeparatorAdaptive())
		fmt.Fprintf(stdout, "%s\n", DimStyle.Render(fmt.Sprintf("%s converted in %s",
			pluralize(len(data.Converted), "document", "documents"), formatDurationShort(elapsed))))
	}
}
