// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/frame"
	"github.com/katalvlaran/lvmath/internal/cli"
	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/scalar"
)

// run executes the command line and returns exit code, stdout and stderr.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "--kind", "f32", "1", "2", "3"}, "3f8000004000000040400000\n"},
		{[]string{"encode", "-k", "u16", "1", "515"}, "00010203\n"},
		{[]string{"encode", "-k", "u8", "010", "9"}, "0a09\n"},
		{[]string{"encode", "--kind", "i8", "--", "-1", "127"}, "ff7f\n"},
		{[]string{"encode", "--kind", "u128", "1"}, "00000000000000000000000000000001\n"},
		{[]string{"encode", "--kind", "i128", "--", "-2"}, "fffffffffffffffffffffffffffffffe\n"},
	}
	for _, tc := range cases {
		code, out, errOut := run(t, tc.args...)
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, tc.want, out, "%v", tc.args)
	}
}

func TestEncodeRejects(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"encode", "--kind", "f16", "1"},
		{"encode", "--kind", "u8", "256"},
		{"encode", "--kind", "i32", "x"},
		{"encode", "--kind", "u16", "0x0203"},
		{"encode", "--kind", "i64", "--", "-0b1"},
		{"encode", "--kind", "f64"},
		{"encode", "1"},
	} {
		code, out, _ := run(t, args...)
		assert.Equal(t, 1, code, "%v", args)
		assert.Empty(t, out)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "encode", "--kind", "f64", "--", "1.5", "-2", "0.25")
	require.Equal(t, 0, code)

	code, got, errOut := run(t, "decode", "--kind", "f64", strings.TrimSpace(out))
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "[1.5, -2, 0.25]\n", got)

	code, out, _ = run(t, "encode", "--kind", "i16", "1", "2", "3", "4", "5", "6")
	require.Equal(t, 0, code)
	code, got, _ = run(t, "decode", "--kind", "i16", "--arity", "3", strings.TrimSpace(out))
	require.Equal(t, 0, code)
	assert.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", got)

	code, _, _ = run(t, "decode", "--kind", "i16", "--arity", "4", strings.TrimSpace(out))
	assert.Equal(t, 1, code)
}

func TestFramedRoundTrip(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "encode", "--frame", "--kind", "u32", "7", "8", "9")
	require.Equal(t, 0, code)

	raw, err := hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	f, err := frame.Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, scalar.U32, f.Kind)
	assert.Equal(t, []int{3}, f.Shape)

	code, got, _ := run(t, "decode", "--frame", strings.TrimSpace(out))
	require.Equal(t, 0, code)
	assert.Equal(t, "[7, 8, 9]\n", got)
}

func TestDecodeRejects(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"decode", "--kind", "f32", "3f80"},
		{"decode", "--kind", "f32", "zz"},
		{"decode", "3f800000"},
		{"decode", "--frame", "3f800000"},
		{"decode", "--kind", "f32", ""},
	} {
		code, _, _ := run(t, args...)
		assert.Equal(t, 1, code, "%v", args)
	}
}

func TestMatmul(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "kind: i32\na:\n  - [1, 2]\n  - [3, 4]\nb:\n  - [5, 6]\n  - [7, 8]\n")
	code, out, errOut := run(t, "matmul", "--file", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "[19, 22]\n[43, 50]\n", out)

	path = writeFile(t, "a: [[1.5, 0], [0, 2]]\nb: [[2], [0.5]]\n")
	code, out, _ = run(t, "matmul", "-f", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "[3]\n[1]\n", out)

	code, out, _ = run(t, "matmul", "--frame", "-f", path)
	require.Equal(t, 0, code)
	raw, err := hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	f, err := frame.Unmarshal(raw)
	require.NoError(t, err)
	m, err := frame.DecodeMat[float64](f)
	require.NoError(t, err)
	assert.True(t, mat.MustNew([][]float64{{3}, {1}}).Equal(m))

	// decode lays a framed matrix out row by row
	code, out2, _ := run(t, "decode", "--frame", strings.TrimSpace(out))
	require.Equal(t, 0, code)
	assert.Equal(t, "[3]\n[1]\n", out2)
}

func TestMatmulRejects(t *testing.T) {
	t.Parallel()

	for _, content := range []string{
		"a: [[1, 2]]\nb: [[1, 2]]\n",
		"kind: u8\na: [[1]]\nb: [[1]]\n",
		"kind: i32\na: [[1.5]]\nb: [[1]]\n",
		"a: [[1, 2], [3]]\nb: [[1]]\n",
		"b: [[1]]\n",
		"a: [\n",
	} {
		code, _, _ := run(t, "matmul", "--file", writeFile(t, content))
		assert.Equal(t, 1, code, content)
	}

	code, _, _ := run(t, "matmul", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
}

func TestMatmulIntegerKindRejectsFractions(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"i32", "i64"} {
		path := writeFile(t, "kind: "+kind+"\na: [[1, 2], [3, 4]]\nb: [[1.5, 2.9], [1, 1]]\n")
		code, out, errOut := run(t, "matmul", "--file", path)
		assert.Equal(t, 1, code, kind)
		assert.Empty(t, out, kind)
		assert.Contains(t, errOut, "operand b[0][0]", kind)
	}

	// floats still accept integral literals
	path := writeFile(t, "kind: f32\na: [[1, 2]]\nb: [[0.5], [2]]\n")
	code, out, errOut := run(t, "matmul", "--file", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "[4.5]\n", out)
}

func TestRotate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"rotate", "--euler", "0,0,90", "--degrees", "--vec", "1,0,0"}, "[0.000000, 1.000000, 0.000000]\n"},
		{[]string{"rotate", "--axis", "0,0,2", "--angle", "180", "-d", "--vec", "1,2,3", "--precision", "3"}, "[-1.000, -2.000, 3.000]\n"},
		{[]string{"rotate", "--euler", "0,0,0", "--vec", "1.5,2,3"}, "[1.500000, 2.000000, 3.000000]\n"},
		{[]string{"rotate", "--axis", "1,0,0", "--angle=-1.5707963267948966", "--vec", "0,1,0", "--precision", "4"}, "[0.0000, 0.0000, -1.0000]\n"},
	}
	for _, tc := range cases {
		code, out, errOut := run(t, tc.args...)
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, tc.want, out, "%v", tc.args)
	}

	for _, args := range [][]string{
		{"rotate", "--vec", "1,0,0"},
		{"rotate", "--euler", "0,0,0", "--axis", "0,0,1", "--vec", "1,0,0"},
		{"rotate", "--axis", "0,0,0", "--vec", "1,0,0"},
		{"rotate", "--euler", "0,0", "--vec", "1,0,0"},
		{"rotate", "--euler", "0,0,0"},
	} {
		code, _, _ := run(t, args...)
		assert.Equal(t, 1, code, "%v", args)
	}
}

func TestLogging(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "--log-level", "debug", "--log-format", "json", "encode", "--kind", "u8", "1")
	require.Equal(t, 0, code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Split(strings.TrimSpace(errOut), "\n")[0]), &entry))
	assert.Equal(t, "encode", entry["cmd"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "u8", entry["kind"])

	code, _, errOut = run(t, "--log-format", "json", "decode", "--kind", "f32", "00")
	require.Equal(t, 1, code)
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(errOut)), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Contains(t, entry["error"], "payload length")

	code, _, errOut = run(t, "encode", "--kind", "u8", "1")
	require.Equal(t, 0, code)
	assert.Empty(t, errOut, "info level hides debug entries")

	code, _, _ = run(t, "--log-format", "xml", "encode", "--kind", "u8", "1")
	assert.Equal(t, 1, code)
}

func TestHelp(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "--help")
	require.Equal(t, 0, code)
	for _, cmd := range []string{"encode", "decode", "matmul", "rotate"} {
		assert.Contains(t, out, cmd)
	}

	code, _, errOut := run(t)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}
