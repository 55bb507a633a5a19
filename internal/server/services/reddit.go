package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edgcastillo/saveddit/internal/common"
	"github.com/edgcastillo/saveddit/internal/cryptox"
	"github.com/edgcastillo/saveddit/internal/reddit"
	"github.com/edgcastillo/saveddit/internal/server/config"
	"github.com/edgcastillo/saveddit/internal/server/models"
	"github.com/edgcastillo/saveddit/internal/server/repositories/repomanager"
)

// permalinkBase prefixes the relative permalinks Reddit returns.
const permalinkBase = "https://reddit.com"

// RedditService is the credential custody workflow: it links a Reddit
// account to a user (verify, then encrypt, then one atomic write) and
// fetches saved items with on-demand decryption. Raw Reddit credentials
// exist in memory only for the duration of a call.
type RedditService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	verifier    reddit.Verifier
	fetcher     reddit.SavedFetcher
	encKey      []byte
	callTimeout time.Duration
}

// NewRedditService wires the workflow to its collaborators. encKey must be a
// parsed cryptox key.
func NewRedditService(db *sql.DB, m repomanager.RepositoryManager, v reddit.Verifier, f reddit.SavedFetcher, encKey []byte, cfg *config.Config) *RedditService {
	return &RedditService{
		db:          db,
		repomanager: m,
		verifier:    v,
		fetcher:     f,
		encKey:      encKey,
		callTimeout: cfg.ExternalCallTimeout,
	}
}

// Link verifies the supplied Reddit credentials against the live service and
// only then persists them, encrypted, in a single atomic update. On any
// verification failure nothing is written and the account stays unlinked.
func (s *RedditService) Link(ctx context.Context, user *models.User, redditUsername, redditPassword string) error {
	vctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	if err := s.verifier.Verify(vctx, redditUsername, redditPassword); err != nil {
		return normalizeCollaboratorError(err)
	}

	encUsername, err := cryptox.Encrypt([]byte(redditUsername), s.encKey)
	if err != nil {
		return fmt.Errorf("error encrypting credentials: %w", err)
	}
	encPassword, err := cryptox.Encrypt([]byte(redditPassword), s.encKey)
	if err != nil {
		return fmt.Errorf("error encrypting credentials: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.SetRedditCredentials(ctx, user.ID, encUsername, encPassword); err != nil {
		return fmt.Errorf("error storing credentials: %w", err)
	}
	return nil
}

// SavedItems decrypts the stored credentials and fetches the user's saved
// items, mapping each one to the uniform client shape. The collaborator's
// ordering is preserved.
func (s *RedditService) SavedItems(ctx context.Context, user *models.User) ([]models.SavedItem, error) {
	if !user.Linked() {
		return nil, common.ErrNotLinked
	}

	redditUsername, err := cryptox.Decrypt(user.RedditUsernameEnc.String, s.encKey)
	if err != nil {
		return nil, err
	}
	redditPassword, err := cryptox.Decrypt(user.RedditPasswordEnc.String, s.encKey)
	if err != nil {
		common.WipeByteArray(redditUsername)
		return nil, err
	}

	fctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	items, err := s.fetcher.Saved(fctx, string(redditUsername), string(redditPassword))
	common.WipeByteArray(redditUsername)
	common.WipeByteArray(redditPassword)
	if err != nil {
		return nil, normalizeCollaboratorError(err)
	}

	mapped := make([]models.SavedItem, 0, len(items))
	for _, item := range items {
		kind := models.ItemKindPost
		if item.Kind == reddit.KindComment {
			kind = models.ItemKindComment
		}
		mapped = append(mapped, models.SavedItem{
			Kind:      kind,
			Title:     item.TitleOrBody,
			URL:       permalinkBase + item.Permalink,
			Subreddit: item.Subreddit,
		})
	}
	return mapped, nil
}

// normalizeCollaboratorError keeps only taxonomy errors; anything the
// collaborator leaks beyond that becomes a generic external-service error so
// raw detail never reaches a client.
func normalizeCollaboratorError(err error) error {
	if errors.Is(err, common.ErrInvalidRedditCredentials) || errors.Is(err, common.ErrExternalService) {
		return err
	}
	return common.ErrExternalService
}
