package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abelgk/crately/internal/domain/contract"
	"github.com/abelgk/crately/internal/domain/entity"
	"github.com/abelgk/crately/internal/infrastructure/authority"
	redisclient "github.com/abelgk/crately/internal/infrastructure/cache"
	"github.com/abelgk/crately/internal/infrastructure/config"
	"github.com/abelgk/crately/internal/infrastructure/csrf"
	"github.com/abelgk/crately/internal/infrastructure/identity"
	"github.com/abelgk/crately/internal/infrastructure/logger"
	"github.com/abelgk/crately/internal/infrastructure/store"
	"github.com/abelgk/crately/internal/infrastructure/validator"
	"github.com/abelgk/crately/internal/usecase"
	"github.com/abelgk/crately/internal/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	root := &cobra.Command{
		Use:   "crately",
		Short: "Browse, vote on and manage a shared album collection",
	}
	root.AddCommand(newListCmd(), newVoteCmd(), newDeleteCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newSession wires a session against the configured authority. The page cache
// is in-memory unless a Redis URL is configured.
func newSession(ctx context.Context) (*usecase.AlbumSession, error) {
	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()

	identityProvider := identity.NewTokenProvider(appConfig.GetAccessToken())

	baseURL, err := url.Parse(appConfig.GetAuthorityBaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse authority base URL: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	httpClient := &http.Client{Jar: jar, Timeout: appConfig.GetRequestTimeout()}
	csrfSource := csrf.NewCookieSource(jar, baseURL, appConfig.GetCSRFCookieName())

	client, err := authority.NewClient(appConfig.GetAuthorityBaseURL(), httpClient, identityProvider, csrfSource, appLogger)
	if err != nil {
		return nil, err
	}

	var pageCache contract.IPageCache = store.NewMemoryPageCache()
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		if rdb := redisclient.NewRedisFromURL(ctx, redisURL); rdb != nil {
			pageCache = store.NewRedisPageCache(rdb, 0)
		}
	}

	return usecase.NewAlbumSession(client, pageCache, appLogger, appValidator), nil
}

func newListCmd() *cobra.Command {
	var page int
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List albums ranked by net vote score",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			sess, err := newSession(ctx)
			if err != nil {
				return err
			}
			sess.SetSearch(search)
			sess.SetPage(page)
			sess.Query(ctx)
			if msg := sess.Err(); msg != "" {
				return fmt.Errorf("%s", msg)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCORE\tTITLE\tARTIST\tID")
			for _, album := range sess.Albums() {
				up, down := utils.TallyVotes(album.Votes)
				fmt.Fprintf(w, "%+d\t%s\t%s\t%s\n", up-down, album.Title, album.ArtistName, album.ID)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d albums)\n", sess.CurrentPage(), sess.LastPage(), sess.TotalCount())
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVar(&search, "search", "", "search text")
	return cmd
}

func newVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <album-id> <up|down>",
		Short: "Cast or change a vote on an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			sess, err := newSession(ctx)
			if err != nil {
				return err
			}
			// Prime the CSRF cookie with a read before the mutating call.
			sess.Query(ctx)
			if err := sess.Vote(ctx, args[0], entity.VoteValue(args[1])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "vote recorded")
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <album-id>",
		Short: "Delete an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			sess, err := newSession(ctx)
			if err != nil {
				return err
			}
			// Prime the CSRF cookie with a read before the mutating call.
			sess.Query(ctx)
			if err := sess.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "album deleted")
			return nil
		},
	}
}
