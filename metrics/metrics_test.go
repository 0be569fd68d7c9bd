// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := New()
	r.RecordCandidate("norm", OutcomeOK, 2*time.Millisecond)
	r.RecordCandidate("norm", OutcomeOK, time.Millisecond)
	r.RecordCandidate("beta", OutcomeFailed, time.Millisecond)
	r.RecordSelection("points", "norm")
	r.RecordPlayer(PlayerProcessed)
	r.RecordPlayer(PlayerSkipped)
	r.RecordPlayer(PlayerSkipped)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.candidateFits.WithLabelValues("norm", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.candidateFits.WithLabelValues("beta", OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.selections.WithLabelValues("points", "norm")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.players.WithLabelValues(PlayerSkipped)))
	assert.Equal(t, 2, testutil.CollectAndCount(r.fitDuration))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.RecordCandidate("norm", OutcomeOK, time.Second)
		r.RecordSelection("points", "norm")
		r.RecordPlayer(PlayerFailed)
	})
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.RecordPlayer(PlayerProcessed)
	path := filepath.Join(t.TempDir(), "playerdist.prom")
	require.NoError(t, r.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `playerdist_players_total{status="processed"} 1`)
}
