package lifecycle

import (
	"context"

	"github.com/raphi011/wts/internal/home"
)

// List returns the home around the working directory and all of its checkouts.
func List(ctx context.Context, env *Env) (*home.Home, []home.Checkout, error) {
	h, err := home.Resolve(ctx, env.Cwd)
	if err != nil {
		return nil, nil, err
	}
	checkouts, err := home.List(ctx, h)
	if err != nil {
		return nil, nil, err
	}
	return h, checkouts, nil
}
