package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	t.Parallel()

	e := New(CodeAlreadyVoted, "vote already recorded", http.StatusConflict)
	assert.Equal(t, "already_voted: vote already recorded", e.Error())

	wrapped := Wrap(stderrors.New("unique violation"), CodeAlreadyVoted, "vote already recorded", http.StatusConflict)
	assert.Equal(t, "already_voted: vote already recorded: unique violation", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	t.Parallel()

	inner := stderrors.New("boom")
	e := Wrap(inner, CodeInternalError, "something failed", http.StatusInternalServerError)

	require.True(t, stderrors.Is(e, inner))
}

func TestIsAppError(t *testing.T) {
	t.Parallel()

	e := Precondition(CodeBattleNotOpenForVoting, "battle is not active")
	wrapped := fmt.Errorf("cast vote: %w", e)

	got, ok := IsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeBattleNotOpenForVoting, got.Code)
	assert.Equal(t, http.StatusConflict, got.HTTPStatus)

	_, ok = IsAppError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CodeAdminRequired, CodeOf(ErrAdminRequired()))
	assert.Equal(t, CodeInternalError, CodeOf(stderrors.New("plain")))
}

func TestWithParams(t *testing.T) {
	t.Parallel()

	e := ErrRateLimited("battle.propose").WithParams(map[string]interface{}{
		"procedure": "battle.propose",
	})
	require.NotNil(t, e.Params)
	assert.Equal(t, "battle.propose", e.Params["procedure"])
	assert.Equal(t, http.StatusTooManyRequests, e.HTTPStatus)

	var nilErr *AppError
	assert.Nil(t, nilErr.WithParams(map[string]interface{}{"k": "v"}))
}
