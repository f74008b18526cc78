package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	type args struct {
		file string
	}

	type want struct {
		raw *RawConfig
		err string // 空でなければエラーメッセージにこの文字列を含むこと
	}

	tests := []struct {
		name string
		args args
		want want
	}{
		{
			name: "設定ファイルが存在しない場合はエラー",
			args: args{file: "doesnotexist.yml"},
			want: want{err: "unable to read config"},
		},
		{
			name: "不正な形式の設定ファイルはエラー",
			args: args{file: "testdata/cfg/malformed.yml"},
			want: want{err: "unable to parse config"},
		},
		{
			name: "不明なキーが含まれている場合はエラー",
			args: args{file: "testdata/cfg/unknown_keys.yml"},
			want: want{err: "unknown field"},
		},
		{
			name: "全フィールドを含む YAML を読み込める",
			args: args{file: "testdata/cfg/full.yml"},
			want: want{
				raw: &RawConfig{
					Scalars: map[string]string{
						"DateTime": "time.Time",
						"UUID":     "string",
					},
					DefaultScalarType: ptr("any"),
					NamingConvention: &ConventionConfig{
						TypeNames:           "pascalCase",
						EnumValues:          "constantCase",
						TransformUnderscore: ptr(true),
					},
					TypesPrefix:            ptr("Gql"),
					TypesSuffix:            ptr("Model"),
					SkipTypename:           ptr(true),
					NonOptionalTypename:    ptr(true),
					DedupeOperationSuffix:  ptr(true),
					FragmentVariableSuffix: ptr("FragmentDoc"),
					DedupeFragments:        ptr(true),
					AllowEnumStringTypes:   ptr(true),
					InlineFragmentTypes:    ptr("mask"),
					ImmutableTypes:         ptr(true),
					UseTypeImports:         ptr(true),
				},
			},
		},
		{
			name: "naming_convention のスカラー形式を読み込める",
			args: args{file: "testdata/cfg/keep.yml"},
			want: want{
				raw: &RawConfig{
					NamingConvention: &ConventionConfig{All: "keep"},
				},
			},
		},
		{
			name: "strict_scalars とスカラーマップを読み込める",
			args: args{file: "testdata/cfg/strict.yml"},
			want: want{
				raw: &RawConfig{
					StrictScalars: ptr(true),
					Scalars:       map[string]string{"DateTime": "Date"},
				},
			},
		},
		{
			name: "JSON の設定ファイルも読み込める",
			args: args{file: "testdata/cfg/full.json"},
			want: want{
				raw: &RawConfig{
					Scalars:               map[string]string{"DateTime": "time.Time"},
					NamingConvention:      &ConventionConfig{All: "camelCase"},
					TypesPrefix:           ptr("I"),
					DedupeOperationSuffix: ptr(true),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(tt.args.file)

			if tt.want.err != "" {
				if err == nil {
					t.Fatal("error = nil, want error")
				}
				if !strings.Contains(err.Error(), tt.want.err) {
					t.Errorf("error message = %q, want to contain %q", err.Error(), tt.want.err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if diff := cmp.Diff(tt.want.raw, got); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("GQLNAMING_PREFIX", "I")

	got, err := Load("testdata/cfg/env.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got.TypesPrefix == nil || *got.TypesPrefix != "I" {
		t.Errorf("TypesPrefix = %v, want %q", got.TypesPrefix, "I")
	}
}

func ptr[T any](v T) *T {
	return &v
}
