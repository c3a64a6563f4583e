package sourceset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports/mocks"
	"go.trai.ch/objcbuild/internal/engine/sourceset"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestDirs_ValidPairs(t *testing.T) {
	for _, name := range domain.SourceSetNames() {
		for _, kind := range domain.FileKinds() {
			t.Run(string(name)+"/"+string(kind), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				project := mocks.NewMockSourceProject(ctrl)

				want := domain.DirectorySet{SrcDirs: []string{"/p/src/" + string(name) + "/" + string(kind)}}
				project.EXPECT().HasPlugin(domain.JavaPlugin).Return(true)
				project.EXPECT().DirectorySet(name, kind).Return(want)

				got, err := sourceset.Dirs(project, name, kind)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestDirs_InvalidPairs(t *testing.T) {
	tests := []struct {
		name domain.SourceSetName
		kind domain.FileKind
	}{
		{name: "androidTest", kind: domain.FileKindJava},
		{name: domain.SourceSetMain, kind: "kotlin"},
		{name: "", kind: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.name)+"/"+string(tt.kind), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			project := mocks.NewMockSourceProject(ctrl)
			project.EXPECT().HasPlugin(domain.JavaPlugin).Return(true)

			_, err := sourceset.Dirs(project, tt.name, tt.kind)
			require.ErrorIs(t, err, domain.ErrInvalidSourceSet)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok)
			assert.Equal(t, string(tt.name), zErr.Metadata()["source_set"])
			assert.Equal(t, string(tt.kind), zErr.Metadata()["file_kind"])
		})
	}
}

func TestDirs_JavaPluginMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := mocks.NewMockSourceProject(ctrl)
	project.EXPECT().HasPlugin(domain.JavaPlugin).Return(false)
	project.EXPECT().DescriptorName().Return(domain.ProjectFileName)

	_, err := sourceset.Dirs(project, domain.SourceSetMain, domain.FileKindJava)
	require.ErrorIs(t, err, domain.ErrJavaPluginMissing)
	assert.Contains(t, err.Error(), "Add it to objcbuild.yaml")
	assert.Contains(t, err.Error(), "plugins: [java]")
}

func TestDirs_JavaPluginMissing_TOML(t *testing.T) {
	project := &domain.Project{Descriptor: "/p/" + domain.ProjectTOMLFileName}

	_, err := sourceset.Dirs(project, domain.SourceSetMain, domain.FileKindJava)
	require.ErrorIs(t, err, domain.ErrJavaPluginMissing)
	assert.Contains(t, err.Error(), "Add it to objcbuild.toml")
	assert.Contains(t, err.Error(), `plugins = ["java"]`)
}

func TestDirs_DomainProject(t *testing.T) {
	project := &domain.Project{
		Plugins: []string{domain.JavaPlugin},
		SourceSets: map[domain.SourceSetName]map[domain.FileKind][]string{
			domain.SourceSetTest: {domain.FileKindResources: {"/p/res"}},
		},
	}

	got, err := sourceset.Dirs(project, domain.SourceSetTest, domain.FileKindResources)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/res"}, got.SrcDirs)
}
