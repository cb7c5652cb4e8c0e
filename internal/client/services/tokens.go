package services

import (
	"context"
	"database/sql"

	"github.com/svsticky/chroma/internal/client/repositories/metadata"
	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/client/transport"
	"github.com/svsticky/chroma/internal/common"
	"github.com/svsticky/chroma/internal/dbx"
)

// TokenStore keeps the session token and role in the local database. It is
// the CLI's transport.ConfigResolver: the token is read on every call.
type TokenStore struct {
	db      *sql.DB
	repo    metadata.Repository
	baseURL string
}

var _ transport.ConfigResolver = (*TokenStore)(nil)

func NewTokenStore(db *sql.DB, baseURL string) *TokenStore {
	return &TokenStore{db: db, repo: metadata.NewSQLiteRepository(db), baseURL: baseURL}
}

// Resolve returns the API base URL and the stored token, empty when logged
// out.
func (s *TokenStore) Resolve(ctx context.Context) (transport.Config, error) {
	token, _, err := s.repo.Get(ctx, common.MetadataKeySession)
	if err != nil {
		return transport.Config{}, err
	}
	return transport.Config{BaseURL: s.baseURL, Token: token}, nil
}

// Load returns the stored token and role, read in one query. An empty token
// means logged out.
func (s *TokenStore) Load(ctx context.Context) (string, session.Role, error) {
	values, err := s.repo.List(ctx)
	if err != nil {
		return "", "", err
	}
	role, _ := session.ParseRole(values[common.MetadataKeyRole])
	return values[common.MetadataKeySession], role, nil
}

// Save stores token and role together.
func (s *TokenStore) Save(ctx context.Context, token string, role session.Role) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.MetadataKeySession, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.MetadataKeyRole, string(role))
	})
}

func (s *TokenStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.MetadataKeySession, common.MetadataKeyRole)
}
