package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seatplan/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Ratings",
			input:  []byte(`{"voter":"S01","ratings":{"S02":5,"S03":4}}`),
			output: []byte(`{"voter":"S01","ratings":{[MASKED]}}`),
		},
		{
			name:   "Blocked peer",
			input:  []byte(`{"voter":"S01","blocked":"S07"}`),
			output: []byte(`{"voter":"S01","blocked":"[MASKED]"}`),
		},
		{
			name:   "Bot token in URL",
			input:  []byte(`POST https://api.telegram.org/bot123456:AAE-x_y/sendMessage`),
			output: []byte(`POST https://api.telegram.org/bot[MASKED]/sendMessage`),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"columns":6}`),
			output: []byte(`{"columns":6}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMaskerMask(t *testing.T) {
	input := []byte(`{"blocked":"S07"}`)

	require.Equal(t, input, logx.NewNopSensitiveDataMasker().Mask(input))
}
