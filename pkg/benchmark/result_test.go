package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_ToJSONable(t *testing.T) {
	t.Run("merge precedence", func(t *testing.T) {
		result := Result{
			Name:     "fio",
			Config:   map[string]interface{}{"x": 1},
			Data:     map[string]interface{}{"x": 2, "y": 3},
			Metadata: map[string]interface{}{"y": 4},
			Labels:   map[string]string{"z": "5"},
		}

		assert.Equal(t, map[string]interface{}{
			"x":        2,
			"y":        4,
			"z":        "5",
			"workload": "fio",
		}, result.ToJSONable())
	})

	t.Run("workload key always wins", func(t *testing.T) {
		result := Result{
			Name:   "fio",
			Labels: map[string]string{"workload": "spoofed"},
		}
		assert.Equal(t, "fio", result.ToJSONable()["workload"])
	})

	t.Run("empty result still carries workload", func(t *testing.T) {
		flat := Result{Name: "uperf"}.ToJSONable()
		assert.Equal(t, map[string]interface{}{"workload": "uperf"}, flat)
	})
}
