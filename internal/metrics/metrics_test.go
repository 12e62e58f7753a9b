package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("failure"))

	RecordLogin(false)
	RecordLogin(false)
	RecordLogin(true)

	assert.Equal(t, before+2, testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("failure")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success")), 1.0)
}

func TestRecordRequest(t *testing.T) {
	RecordRequest("GET", "/articles/:id", 404, 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/articles/:id", "404")))
}
