// Package montecarlo samples uncertain flight parameters, evaluates the
// range model once per sample, and summarizes the resulting distribution.
//
//	drv, err := montecarlo.NewDriver(cfg, flight.NewBreguet())
//	res, err := drv.Run(ctx)
//
// All random draws come from an explicit generator seeded by the config;
// the same seed and run count always reproduce a bit-identical ensemble.
// Sampling is sequential to preserve draw order, then the independent
// evaluations are dispatched across workers and reassembled by index.
package montecarlo
