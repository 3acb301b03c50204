package cli

import (
	"os"
	"testing"

	"github.com/retroenv/gbgodisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags_DisasmOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Disassembler
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.gb"},
			want: options.Disassembler{CodeStart: options.DefaultCodeStart, HexComments: true, OffsetComments: true},
		},
		{
			name: "nohexcomments flag",
			args: []string{"prog", "-nohexcomments", "test.gb"},
			want: options.Disassembler{CodeStart: options.DefaultCodeStart, OffsetComments: true},
		},
		{
			name: "nooffsets flag",
			args: []string{"prog", "-nooffsets", "test.gb"},
			want: options.Disassembler{CodeStart: options.DefaultCodeStart, HexComments: true},
		},
		{
			name: "start flag",
			args: []string{"prog", "-start", "0x200", "test.gb"},
			want: options.Disassembler{CodeStart: 0x200, HexComments: true, OffsetComments: true},
		},
		{
			name: "start flag without prefix",
			args: []string{"prog", "-start", "4000", "test.gb"},
			want: options.Disassembler{CodeStart: 0x4000, HexComments: true, OffsetComments: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_InvalidStart(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-start", "nothex", "test.gb"}

	_, _, err := ParseFlags()
	assert.Error(t, err)
}

func TestParseCodeStart(t *testing.T) {
	tests := []struct {
		value   string
		want    uint16
		wantErr bool
	}{
		{value: "", want: options.DefaultCodeStart},
		{value: "0x150", want: 0x150},
		{value: "$150", want: 0x150},
		{value: "4000", want: 0x4000},
		{value: "0xFFFF", want: 0xffff},
		{value: "10000", wantErr: true},
		{value: "zzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseCodeStart(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
