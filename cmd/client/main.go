package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-mark-keeper/internal/adapter"
	"github.com/MKhiriev/go-mark-keeper/internal/logger"
	"github.com/MKhiriev/go-mark-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: mark-keeper [flags] <command> [arguments]

commands:
  register <email> <password> [name]     create an account and print it
  login    <email> <password>            authenticate and print the token
  me                                     print the current account
  update-me [-email e] [-name n] [-password p]
                                         update the current account
  delete-me                              delete the current account
  add      <url> [title] [description]   create a bookmark
  list                                   list all bookmarks
  get      <id>                          print a single bookmark
  update   <id> [-url u] [-title t] [-description d]
                                         update a bookmark
  delete   <id>                          delete a bookmark

flags:
`

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-mark-client")

	var (
		address = flag.String("a", "http://localhost:8080", "server base URL")
		token   = flag.String("t", os.Getenv("MARK_KEEPER_TOKEN"), "bearer token for authenticated commands")
		timeout = flag.Duration("timeout", 15*time.Second, "request timeout")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: *timeout,
	})
	serverAdapter.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	command := flag.Arg(0)
	args := flag.Args()[1:]

	if err := run(ctx, serverAdapter, command, args); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

func run(ctx context.Context, serverAdapter adapter.ServerAdapter, command string, args []string) error {
	switch command {
	case "register":
		if len(args) < 2 {
			return fmt.Errorf("register requires <email> <password> [name]")
		}
		request := models.RegisterRequest{Email: args[0], Password: args[1]}
		if len(args) > 2 {
			request.Name = args[2]
		}

		user, err := serverAdapter.Register(ctx, request)
		if err != nil {
			return err
		}

		fmt.Printf("token: %s\n", serverAdapter.Token())
		return printJSON(user)

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("login requires <email> <password>")
		}

		token, err := serverAdapter.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
		if err != nil {
			return err
		}

		fmt.Printf("token: %s\n", token.SignedString)
		return nil

	case "me":
		user, err := serverAdapter.CurrentUser(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "update-me":
		update, err := parseUserUpdateFlags(args)
		if err != nil {
			return err
		}

		user, err := serverAdapter.UpdateCurrentUser(ctx, update)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "delete-me":
		return serverAdapter.DeleteCurrentUser(ctx)

	case "add":
		if len(args) < 1 {
			return fmt.Errorf("add requires <url> [title] [description]")
		}
		create := models.BookmarkCreate{URL: args[0]}
		if len(args) > 1 {
			create.Title = args[1]
		}
		if len(args) > 2 {
			create.Description = args[2]
		}

		bookmark, err := serverAdapter.CreateBookmark(ctx, create)
		if err != nil {
			return err
		}
		return printJSON(bookmark)

	case "list":
		bookmarks, err := serverAdapter.ListBookmarks(ctx)
		if err != nil {
			return err
		}
		return printJSON(bookmarks)

	case "get":
		bookmarkID, err := parseBookmarkID(args)
		if err != nil {
			return err
		}

		bookmark, err := serverAdapter.GetBookmark(ctx, bookmarkID)
		if err != nil {
			return err
		}
		return printJSON(bookmark)

	case "update":
		bookmarkID, err := parseBookmarkID(args)
		if err != nil {
			return err
		}
		update, err := parseBookmarkUpdateFlags(args[1:])
		if err != nil {
			return err
		}

		bookmark, err := serverAdapter.UpdateBookmark(ctx, bookmarkID, update)
		if err != nil {
			return err
		}
		return printJSON(bookmark)

	case "delete":
		bookmarkID, err := parseBookmarkID(args)
		if err != nil {
			return err
		}
		return serverAdapter.DeleteBookmark(ctx, bookmarkID)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseBookmarkID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing bookmark <id> argument")
	}

	bookmarkID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bookmark id %q", args[0])
	}

	return bookmarkID, nil
}

func parseUserUpdateFlags(args []string) (models.UserUpdate, error) {
	fs := flag.NewFlagSet("update-me", flag.ContinueOnError)
	email := fs.String("email", "", "new email")
	name := fs.String("name", "", "new display name")
	password := fs.String("password", "", "new password")

	if err := fs.Parse(args); err != nil {
		return models.UserUpdate{}, err
	}

	var update models.UserUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "email":
			update.Email = email
		case "name":
			update.Name = name
		case "password":
			update.Password = password
		}
	})

	return update, nil
}

func parseBookmarkUpdateFlags(args []string) (models.BookmarkUpdate, error) {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	url := fs.String("url", "", "new URL")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")

	if err := fs.Parse(args); err != nil {
		return models.BookmarkUpdate{}, err
	}

	var update models.BookmarkUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			update.URL = url
		case "title":
			update.Title = title
		case "description":
			update.Description = description
		}
	})

	return update, nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
