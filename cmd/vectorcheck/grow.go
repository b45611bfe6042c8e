package main

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/simplevector"
	"github.com/pavanmanishd/simplevector/promvec"
)

const (
	formatLogfmt     = "logfmt"
	formatYAML       = "yaml"
	formatPrometheus = "prometheus"
)

type growCommand struct {
	logger  log.Logger
	out     io.Writer
	format  string
	count   int
	reserve int
}

func (cmd *growCommand) run() error {
	if cmd.count < 0 {
		return errors.Errorf("count must not be negative, got %d", cmd.count)
	}
	v := simplevector.NewReserved[int](simplevector.Reserve(cmd.reserve))
	for i := 0; i < cmd.count; i++ {
		v.PushBack(i)
	}
	level.Debug(cmd.logger).Log("msg", "appended elements", "count", cmd.count, "reserve", cmd.reserve)
	return cmd.report(v)
}

func (cmd *growCommand) report(v *simplevector.Vector[int]) error {
	m := v.Metrics()
	switch cmd.format {
	case formatYAML:
		enc := yaml.NewEncoder(cmd.out)
		if err := enc.Encode(m); err != nil {
			return errors.Wrap(err, "encode metrics")
		}
		return errors.Wrap(enc.Close(), "close encoder")
	case formatPrometheus:
		return writeExposition(cmd.out, v)
	default:
		return log.NewLogfmtLogger(cmd.out).Log(
			"size", m.Size,
			"capacity", m.Capacity,
			"reallocations", m.Reallocations,
			"utilization", m.Utilization,
			"capacity_bytes", m.CapacityBytes,
		)
	}
}

// writeExposition renders v's metrics in the Prometheus text format.
func writeExposition(w io.Writer, v *simplevector.Vector[int]) error {
	c := promvec.NewCollector("vectorcheck")
	c.Add("grow", v)

	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return errors.Wrap(err, "register collector")
	}
	mfs, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
