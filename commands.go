package littleprince

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Quit stops the frame loop at the end of the current stage.
func (cmd *Commands) Quit() *Commands {
	cmd.app.quit()
	return cmd
}
