package huhforms

import "charm.land/huh/v2"

// CreateProjectForm creates the new project dialog. Both fields are
// required; the repository URL is passed to the backend as entered.
func CreateProjectForm(name, repoURL *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("my-awesome-app").
			Validate(required("Project name is required")).
			Value(name),

		huh.NewInput().
			Key("repo_url").
			Title("GitHub Repository URL").
			Placeholder("https://github.com/username/repo").
			Validate(required("Repository URL is required")).
			Value(repoURL),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateSubmitKeyMap()).WithShowHelp(false)
}
