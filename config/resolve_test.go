package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gqlgo/gqlnaming/casing"
)

func defaultResolved() *ResolvedConfig {
	return &ResolvedConfig{
		StrictScalars:     false,
		DefaultScalarType: "any",
		Conventions: casing.Conventions{
			TypeNames:  casing.PascalCase,
			EnumValues: casing.PascalCase,
		},
		FragmentVariableSuffix: "FragmentDoc",
		InlineFragmentTypes:    InlineFragmentInline,
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	type args struct {
		raw      *RawConfig
		override *RawConfig
	}

	type want struct {
		resolved *ResolvedConfig
		errField string // 空でなければ ConfigError の Field を期待する
	}

	tests := []struct {
		name string
		args args
		want want
	}{
		{
			name: "全て未設定なら組み込みデフォルトに解決される",
			args: args{raw: nil, override: nil},
			want: want{resolved: defaultResolved()},
		},
		{
			name: "ユーザー設定がデフォルトを上書きする",
			args: args{
				raw: &RawConfig{
					TypesPrefix:           ptr("I"),
					DedupeOperationSuffix: ptr(true),
					NamingConvention:      &ConventionConfig{All: "camelCase"},
				},
			},
			want: want{
				resolved: func() *ResolvedConfig {
					c := defaultResolved()
					c.TypesPrefix = "I"
					c.DedupeOperationSuffix = true
					c.Conventions.TypeNames = casing.CamelCase
					c.Conventions.EnumValues = casing.CamelCase
					return c
				}(),
			},
		},
		{
			name: "per-call の override がユーザー設定より優先される",
			args: args{
				raw:      &RawConfig{TypesPrefix: ptr("I"), TypesSuffix: ptr("Model")},
				override: &RawConfig{TypesPrefix: ptr("Gql")},
			},
			want: want{
				resolved: func() *ResolvedConfig {
					c := defaultResolved()
					c.TypesPrefix = "Gql"
					c.TypesSuffix = "Model"
					return c
				}(),
			},
		},
		{
			name: "カテゴリ別の naming_convention は未指定カテゴリが pascalCase に倒れる",
			args: args{
				raw: &RawConfig{
					NamingConvention: &ConventionConfig{EnumValues: "constantCase"},
				},
			},
			want: want{
				resolved: func() *ResolvedConfig {
					c := defaultResolved()
					c.Conventions.EnumValues = casing.ConstantCase
					return c
				}(),
			},
		},
		{
			name: "keep は identity 変換に解決される",
			args: args{
				raw: &RawConfig{NamingConvention: &ConventionConfig{All: "keep"}},
			},
			want: want{
				resolved: func() *ResolvedConfig {
					c := defaultResolved()
					c.Conventions.TypeNames = casing.Keep
					c.Conventions.EnumValues = casing.Keep
					return c
				}(),
			},
		},
		{
			name: "未知の naming_convention はエラー",
			args: args{
				raw: &RawConfig{NamingConvention: &ConventionConfig{All: "dromedaryCase"}},
			},
			want: want{errField: "naming_convention"},
		},
		{
			name: "未知の inline_fragment_types はエラー",
			args: args{
				raw: &RawConfig{InlineFragmentTypes: ptr("flatten")},
			},
			want: want{errField: "inline_fragment_types"},
		},
		{
			name: "strict_scalars と default_scalar_type の併用はエラー",
			args: args{
				raw: &RawConfig{
					StrictScalars:     ptr(true),
					DefaultScalarType: ptr("any"),
				},
			},
			want: want{errField: "default_scalar_type"},
		},
		{
			name: "override で strict を有効にした場合も併用チェックが効く",
			args: args{
				raw:      &RawConfig{DefaultScalarType: ptr("any")},
				override: &RawConfig{StrictScalars: ptr(true)},
			},
			want: want{errField: "default_scalar_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.args.raw, tt.args.override)

			if tt.want.errField != "" {
				var configErr *ConfigError
				if !errors.As(err, &configErr) {
					t.Fatalf("error = %v, want *ConfigError", err)
				}
				if configErr.Field != tt.want.errField {
					t.Errorf("ConfigError.Field = %q, want %q", configErr.Field, tt.want.errField)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			if diff := cmp.Diff(tt.want.resolved, got); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	t.Parallel()

	raw := &RawConfig{
		Scalars:          map[string]string{"DateTime": "time.Time"},
		TypesPrefix:      ptr("I"),
		NamingConvention: &ConventionConfig{All: "pascalCase"},
	}

	first, err := Resolve(raw, nil)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	second, err := Resolve(raw, nil)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	// 同一の RawConfig からは常に同一の ResolvedConfig が得られる
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("diff(-first +second): %s", diff)
	}

	// 解決後に RawConfig 側のマップを書き換えても ResolvedConfig は変わらない
	raw.Scalars["DateTime"] = "mutated"
	if first.Scalars["DateTime"] != "time.Time" {
		t.Errorf("Scalars[DateTime] = %q, want %q", first.Scalars["DateTime"], "time.Time")
	}
}
