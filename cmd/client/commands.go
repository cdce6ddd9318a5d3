package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/katla-sections/internal/adapter"
	"github.com/MKhiriev/katla-sections/models"
)

const usage = `usage: sections-client [flags] <command> [args]

commands:
  list
  get <id>
  create <name> [code] [store-hive-id]
  update <id> <name> [code] [store-hive-id]
  status <id> <true|false>
  delete <id>
  version
  build-info`

var (
	errUsage          = errors.New(usage)
	errUnknownCommand = errors.New("unknown command")
)

type command func(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error

var commands = map[string]command{
	"list":    listSections,
	"get":     getSection,
	"create":  createSection,
	"update":  updateSection,
	"status":  setSectionStatus,
	"delete":  deleteSection,
	"version": printVersion,
}

// run dispatches args[0] to the matching command.
func run(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%w", errUnknownCommand, args[0], errUsage)
	}

	return cmd(ctx, a, args[1:], out)
}

func listSections(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error {
	if len(args) != 0 {
		return errUsage
	}

	items, err := a.List(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []models.HiveSectionListItem{}
	}

	return printJSON(out, items)
}

func getSection(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	section, err := a.Get(ctx, id)
	if err != nil {
		return err
	}

	return printJSON(out, section)
}

func createSection(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error {
	req, err := parseRequest(args)
	if err != nil {
		return err
	}

	created, err := a.Create(ctx, req)
	if err != nil {
		return err
	}

	return printJSON(out, created)
}

func updateSection(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error {
	if len(args) < 2 {
		return errUsage
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	req, err := parseRequest(args[1:])
	if err != nil {
		return err
	}

	if err = a.Update(ctx, id, req); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "section %d updated\n", id)
	return err
}

func setSectionStatus(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error {
	if len(args) != 2 {
		return errUsage
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	deleted, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("invalid status %q: %w", args[1], err)
	}

	if err = a.SetStatus(ctx, id, deleted); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "section %d is_deleted=%t\n", id, deleted)
	return err
}

func deleteSection(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.Delete(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "section %d deleted\n", id)
	return err
}

func printVersion(ctx context.Context, a adapter.SectionsAdapter, args []string, out io.Writer) error {
	if len(args) != 0 {
		return errUsage
	}

	version, err := a.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, version)
	return err
}

// parseRequest reads <name> [code] [store-hive-id].
func parseRequest(args []string) (models.UpdateHiveSectionRequest, error) {
	if len(args) < 1 || len(args) > 3 {
		return models.UpdateHiveSectionRequest{}, errUsage
	}

	req := models.UpdateHiveSectionRequest{Name: args[0]}
	if len(args) > 1 {
		req.Code = args[1]
	}
	if len(args) > 2 {
		hiveID, err := parseID(args[2])
		if err != nil {
			return models.UpdateHiveSectionRequest{}, err
		}
		req.StoreHiveID = hiveID
	}

	return req, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}

	return id, nil
}

func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
