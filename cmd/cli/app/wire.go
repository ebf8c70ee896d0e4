//go:build wireinject
// +build wireinject

package app

import (
	"bumpr/internal/adapters/command_runner"
	"bumpr/internal/adapters/container_image_repository"
	"bumpr/internal/adapters/filesystem"
	"bumpr/internal/adapters/image_store"
	"bumpr/internal/adapters/keyring"
	"bumpr/internal/adapters/logger"
	"bumpr/internal/adapters/scm"
	"bumpr/internal/adapters/templater"
	"bumpr/internal/adapters/terminal"
	"bumpr/internal/core"
	"bumpr/internal/core/domain"
	"bumpr/internal/core/handler"
	"bumpr/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	logger.ProvideLogrusLogger,
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	scm.ProvideGit,
	wire.Bind(new(ports.Scm), new(*scm.Git)),
	container_image_repository.ProvideDockerRepository,
	wire.Bind(new(ports.ContainerImageRepository), new(*container_image_repository.DockerRepository)),
	image_store.ProvideDockerImageStore,
	wire.Bind(new(ports.ImageStore), new(*image_store.DockerImageStore)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	wire.Bind(new(ports.Keyring), new(keyring.ZalandoKeyring)),
	templater.ProvideTextTemplater,
	wire.Bind(new(ports.Templater), new(*templater.TextTemplater)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemSettingsRepository,
	wire.Bind(new(core.SettingsRepository), new(*core.FileSystemSettingsRepository)),
	core.ProvideSettings,
	core.ProvideReleaseDriver,
	wire.Bind(new(core.Releaser), new(*core.ReleaseDriver)),
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectReleaseCommandHandler(options domain.GlobalOptions) (handler.ReleaseCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideReleaseCommandHandler,
	)
	return handler.ReleaseCommandHandler{}, nil
}

func InjectBumpCommandHandler(options domain.GlobalOptions) (handler.BumpCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideBumpCommandHandler,
	)
	return handler.BumpCommandHandler{}, nil
}

func InjectCurrentCommandHandler(options domain.GlobalOptions) (handler.CurrentCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCurrentCommandHandler,
	)
	return handler.CurrentCommandHandler{}, nil
}

func InjectInitializeCommandHandler(options domain.GlobalOptions) (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

func InjectGitTokenCommandHandler() (handler.GitTokenCommandHandler, error) {
	wire.Build(
		Adapter,
		handler.ProvideGitTokenCommandHandler,
	)
	return handler.GitTokenCommandHandler{}, nil
}
