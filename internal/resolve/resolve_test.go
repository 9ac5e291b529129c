package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliva/internal/platform/upstream"
)

type record struct{ Name string }

func named(r record) bool { return r.Name != "" }

func fixed(name string, r record, err error, calls *[]string) Source[record] {
	return Source[record]{
		Name: name,
		Fetch: func(ctx context.Context, key string) (record, error) {
			*calls = append(*calls, name)
			return r, err
		},
	}
}

func TestResolve_EarlierSourceWins(t *testing.T) {
	var calls []string
	chain := New(named,
		fixed("primary", record{Name: "A"}, nil, &calls),
		fixed("mirror", record{Name: "B"}, nil, &calls),
	)

	res, err := chain.Resolve(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "A", res.Value.Name)
	assert.Equal(t, "primary", res.Source)
	assert.Equal(t, []string{"primary"}, calls)
}

func TestResolve_FallsThroughFailuresAndInvalid(t *testing.T) {
	var calls []string
	chain := New(named,
		fixed("primary", record{}, errors.New("timeout"), &calls),
		fixed("mirror", record{}, nil, &calls),
		fixed("alias", record{Name: "C"}, nil, &calls),
	)

	res, err := chain.Resolve(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "alias", res.Source)
	assert.Equal(t, []string{"primary", "mirror", "alias"}, calls)
}

func TestResolve_Exhausted(t *testing.T) {
	var calls []string
	chain := New(named,
		fixed("primary", record{}, nil, &calls),
		fixed("mirror", record{}, errors.New("502"), &calls),
	)

	_, err := chain.Resolve(context.Background(), "x")

	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Len(t, exhausted.Attempts, 2)
	assert.False(t, exhausted.Unavailable())
}

func TestResolve_AllTransportFailuresAreUnavailable(t *testing.T) {
	var calls []string
	chain := New(named,
		fixed("primary", record{}, errors.New("dial"), &calls),
		fixed("mirror", record{}, errors.New("dial"), &calls),
	)

	_, err := chain.Resolve(context.Background(), "x")

	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.True(t, exhausted.Unavailable())
}

func TestResolve_ClientStatusIsAnAnswer(t *testing.T) {
	var calls []string
	notFound := &upstream.StatusError{Provider: "saavn", StatusCode: 404}
	chain := New(named,
		fixed("primary", record{}, notFound, &calls),
		fixed("mirror", record{}, errors.New("dial"), &calls),
	)

	_, err := chain.Resolve(context.Background(), "x")

	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.False(t, exhausted.Unavailable())

	unavailable := New(named,
		fixed("primary", record{}, &upstream.StatusError{Provider: "saavn", StatusCode: 503}, &calls),
		fixed("mirror", record{}, upstream.ErrCircuitOpen, &calls),
	)
	_, err = unavailable.Resolve(context.Background(), "x")
	require.True(t, errors.As(err, &exhausted))
	assert.True(t, exhausted.Unavailable())
}

func TestResolve_StopsOnCancelledContext(t *testing.T) {
	var calls []string
	chain := New(named, fixed("primary", record{Name: "A"}, nil, &calls))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := chain.Resolve(ctx, "x")
	require.Error(t, err)
	assert.Empty(t, calls)
}

func TestThen_AppendsWithoutMutating(t *testing.T) {
	var calls []string
	base := New(named, fixed("primary", record{}, nil, &calls))
	extended := base.Then(fixed("seed", record{Name: "S"}, nil, &calls))

	_, err := base.Resolve(context.Background(), "x")
	require.Error(t, err)

	res, err := extended.Resolve(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "seed", res.Source)
}
