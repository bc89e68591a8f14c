package inspect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	serrors "github.com/matzehuels/sudet/pkg/errors"
	"github.com/matzehuels/sudet/pkg/integrations"
	"github.com/matzehuels/sudet/pkg/integrations/store"
	"github.com/matzehuels/sudet/pkg/steam"
)

// NoRemoteConnections is the remote-section warning for a missing
// remoteclients.vdf.
const NoRemoteConnections = "No Remote Connections Found"

const defaultWorkers = 8

// AccountResolver maps a 64-bit SteamID to its account ID.
type AccountResolver interface {
	ResolveAccountID(ctx context.Context, steamID string, refresh bool) (string, error)
}

// AppLookup retrieves store details for an app.
// It returns an error wrapping [integrations.ErrNotFound] for unknown apps.
type AppLookup interface {
	AppDetails(ctx context.Context, appID string, refresh bool) (*store.AppInfo, error)
}

// Runner assembles a [Report].
type Runner struct {
	Paths    steam.Paths
	Resolver AccountResolver
	Apps     AppLookup
	Logger   *log.Logger

	// Offline disables Resolver and Apps.
	Offline bool
	// Refresh bypasses cached HTTP responses.
	Refresh bool
	// Workers bounds concurrent app lookups. Zero means a default.
	Workers int
	// OnApp, if set, is called after each app lookup with the number done.
	OnApp func(done, total int)
}

// Run reads the Steam files and builds the report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep, err := r.RunAccount(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.localConfig(ctx, rep); err != nil {
		return nil, err
	}
	r.remote(rep)
	return rep, nil
}

// RunAccount reads loginusers.vdf and determines the primary account's ID
// without touching the other files. The returned report has only the
// account fields and warnings set.
func (r *Runner) RunAccount(ctx context.Context) (*Report, error) {
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	rep := &Report{}
	if err := r.account(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *Runner) account(ctx context.Context, rep *Report) error {
	doc, err := steam.ReadDocument(r.Paths.LoginUsers())
	if err != nil {
		return err
	}
	users, err := steam.LoginUsers(doc)
	if err != nil {
		return err
	}
	primary, ok := steam.PrimaryUser(users)
	if !ok {
		return serrors.New(serrors.ErrCodeNotFound, "no accounts in %s", steam.LoginUsersFile)
	}
	rep.Users, rep.Primary = users, primary
	r.Logger.Debug("login users read", "count", len(users), "primary", primary.SteamID)

	if !r.Offline && r.Resolver != nil {
		id, err := r.Resolver.ResolveAccountID(ctx, primary.SteamID, r.Refresh)
		if err == nil {
			err = serrors.ValidateAccountID(id)
		}
		if err == nil {
			rep.AccountID, rep.AccountIDSource = id, IDSourceCommunity
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.Logger.Warn("account ID lookup failed, computing locally", "steamid", primary.SteamID, "error", err)
		rep.warn(SectionAccount, fmt.Sprintf("account ID lookup failed: %v", err))
	}

	id, err := steam.AccountIDFromSteamID64(primary.SteamID)
	if err != nil {
		rep.warn(SectionAccount, serrors.UserMessage(err))
		return nil
	}
	rep.AccountID, rep.AccountIDSource = id, IDSourceLocal
	return nil
}

func (r *Runner) localConfig(ctx context.Context, rep *Report) error {
	if rep.AccountID == "" {
		rep.warn(SectionFriends, "account ID unknown, skipping "+steam.LocalConfigFile)
		return nil
	}
	path, err := r.Paths.LocalConfig(rep.AccountID)
	if err != nil {
		rep.warn(SectionFriends, serrors.UserMessage(err))
		return nil
	}
	doc, err := steam.ReadDocument(path)
	if err != nil {
		r.Logger.Warn("local config unavailable", "path", path, "error", err)
		rep.warn(SectionFriends, serrors.UserMessage(err))
		return nil
	}
	cfg, err := steam.LocalConfig(doc)
	if err != nil {
		rep.warn(SectionFriends, serrors.UserMessage(err))
		return nil
	}
	rep.PersonaName = cfg.PersonaName
	rep.Friends = cfg.Friends
	return r.games(ctx, rep, cfg.AppIDs)
}

type lookup struct {
	game    Game
	skipped bool
	err     error
}

// games names each app concurrently and keeps file order.
func (r *Runner) games(ctx context.Context, rep *Report, appIDs []string) error {
	if r.Offline || r.Apps == nil {
		for _, id := range appIDs {
			rep.Games = append(rep.Games, Game{AppID: id})
		}
		return nil
	}

	results := make([]lookup, len(appIDs))
	jobs := make(chan int)
	workers := r.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	for range min(workers, len(appIDs)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.lookupApp(ctx, appIDs[i])
				if r.OnApp != nil {
					mu.Lock()
					done++
					r.OnApp(done, len(appIDs))
					mu.Unlock()
				}
			}
		}()
	}
feed:
	for i := range appIDs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, res := range results {
		switch {
		case res.skipped:
			rep.SkippedApps = append(rep.SkippedApps, res.game.AppID)
		case res.err != nil:
			rep.warn(SectionGames, fmt.Sprintf("app %s: %v", res.game.AppID, res.err))
			rep.Games = append(rep.Games, res.game)
		default:
			rep.Games = append(rep.Games, res.game)
		}
	}
	r.Logger.Debug("apps resolved", "games", len(rep.Games), "skipped", len(rep.SkippedApps))
	return nil
}

func (r *Runner) lookupApp(ctx context.Context, appID string) lookup {
	g := Game{AppID: appID}
	if err := serrors.ValidateAppID(appID); err != nil {
		return lookup{game: g, err: err}
	}
	info, err := r.Apps.AppDetails(ctx, appID, r.Refresh)
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		return lookup{game: g, skipped: true}
	case err != nil:
		return lookup{game: g, err: err}
	}
	g.Name = info.Name
	return lookup{game: g}
}

func (r *Runner) remote(rep *Report) {
	path := r.Paths.RemoteClients()
	doc, err := steam.ReadDocument(path)
	switch {
	case serrors.Is(err, serrors.ErrCodeFileNotFound):
		rep.warn(SectionRemote, NoRemoteConnections)
	case serrors.Is(err, serrors.ErrCodeInvalidVDF):
		r.Logger.Warn("remoteclients.vdf did not parse, keeping raw lines", "error", err)
		lines, rerr := readLines(path)
		if rerr != nil {
			rep.warn(SectionRemote, rerr.Error())
			return
		}
		rep.RemoteRaw = lines
		rep.warn(SectionRemote, serrors.UserMessage(err))
	case err != nil:
		rep.warn(SectionRemote, serrors.UserMessage(err))
	default:
		rep.Remote = steam.RemoteClients(doc)
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}
