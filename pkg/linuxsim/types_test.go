package linuxsim_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "normal", linuxsim.ClassNormal.String())
	assert.Equal(t, "error", linuxsim.ClassError.String())
	assert.Equal(t, "clear", linuxsim.ClassClear.String())
	assert.Equal(t, "Classification(42)", linuxsim.Classification(42).String())
}

func TestResult_FailPreservesEarlierLines(t *testing.T) {
	var r linuxsim.Result
	r.Append("first")
	r.Fail("cat: %s: %s", "missing", "No such file or directory")
	r.Append("third")

	assert.True(t, r.Failed())
	assert.Equal(t, []string{"first", "cat: missing: No such file or directory", "third"}, r.Text())
}

func TestResult_Empty(t *testing.T) {
	assert.True(t, linuxsim.Result{}.Empty())
	assert.False(t, linuxsim.Result{NewDir: "/tmp"}.Empty())
	assert.False(t, linuxsim.Result{Class: linuxsim.ClassClear}.Empty())
}

func TestResult_JSON(t *testing.T) {
	r := linuxsim.Result{
		Lines: []linuxsim.Line{{Text: "docs", Kind: linuxsim.KindDirectory}},
		Class: linuxsim.ClassSuccess,
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[{"text":"docs","kind":"directory"}],"class":"success"}`, string(data))
}
