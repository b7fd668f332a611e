package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"recruitd/internal/errs"
)

func TestListLanguages(t *testing.T) {
	svc := NewCompetenceService(newFakeCompetences())

	langs, err := svc.ListLanguages(context.Background())
	require.NoError(t, err)
	require.Len(t, langs, 2)
	require.Equal(t, "english", langs[0].Name)
	require.Equal(t, "swedish", langs[1].Name)
}

func TestGetCompetenceTranslations(t *testing.T) {
	svc := NewCompetenceService(newFakeCompetences())
	ctx := context.Background()

	t.Run("known language", func(t *testing.T) {
		out, err := svc.GetCompetenceTranslations(ctx, "swedish")
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, "biljettförsäljning", out[0].Translation)
	})

	t.Run("language name is case insensitive", func(t *testing.T) {
		out, err := svc.GetCompetenceTranslations(ctx, "Swedish")
		require.NoError(t, err)
		require.Len(t, out, 2)
	})

	t.Run("empty language rejected", func(t *testing.T) {
		_, err := svc.GetCompetenceTranslations(ctx, "")
		var invalid *errs.InvalidParameterError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, "language", invalid.Field)
	})

	t.Run("unknown language", func(t *testing.T) {
		_, err := svc.GetCompetenceTranslations(ctx, "klingon")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("language without translations", func(t *testing.T) {
		_, err := svc.GetCompetenceTranslations(ctx, "english")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
