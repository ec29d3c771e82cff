package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	projectservice "github.com/thenoetrevino/devyntra/internal/services/project"
	"github.com/thenoetrevino/devyntra/internal/tui/huhforms"
	"github.com/thenoetrevino/devyntra/internal/tui/layers"
	"github.com/thenoetrevino/devyntra/internal/tui/state"
)

// MsgProjectCreated acknowledges a successful creation
const MsgProjectCreated = "Project created successfully! Analysis has started."

// openProjectForm opens the new project dialog with empty fields
func (m *Model) openProjectForm() tea.Cmd {
	m.FormState.ResetProjectForm()
	m.UiState.SetMode(state.ProjectFormMode)
	return m.buildProjectForm()
}

// buildProjectForm (re)creates the huh form over the bound values, so a
// failed submission keeps what the user typed
func (m *Model) buildProjectForm() tea.Cmd {
	m.FormState.ProjectForm = huhforms.CreateProjectForm(
		&m.FormState.ProjectName,
		&m.FormState.ProjectRepoURL,
	).WithTheme(huhforms.CreateDevyntraTheme(m.Config.ColorScheme)).
		WithWidth(layers.ModalWidth(m.UiState.Width()) - 6)
	return m.FormState.ProjectForm.Init()
}

// updateProjectForm handles keys while the dialog is open
func (m *Model) updateProjectForm(msg tea.KeyPressMsg) tea.Cmd {
	// A request is outstanding: the dialog takes no input
	if m.FormState.Submitting {
		return nil
	}

	if key.Matches(msg, m.keys.Close) {
		m.FormState.ResetProjectForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	return m.updateProjectFormModel(msg)
}

func (m *Model) updateProjectFormModel(msg tea.Msg) tea.Cmd {
	if m.FormState.ProjectForm == nil {
		return nil
	}

	model, cmd := m.FormState.ProjectForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.ProjectForm = f
	}

	switch m.FormState.ProjectForm.State {
	case huh.StateCompleted:
		return m.submitProject()
	case huh.StateAborted:
		m.FormState.ResetProjectForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return cmd
}

// submitProject sends the create request. Only one can be outstanding.
func (m *Model) submitProject() tea.Cmd {
	if m.FormState.Submitting {
		return nil
	}
	m.FormState.Submitting = true
	m.FormState.SubmitError = ""

	svc := m.App.ProjectService
	ctx := m.Ctx
	req := projectservice.CreateProjectRequest{
		Name:    m.FormState.ProjectName,
		RepoURL: m.FormState.ProjectRepoURL,
	}
	return func() tea.Msg {
		p, err := svc.CreateProject(ctx, req)
		return projectCreatedMsg{project: p, err: err}
	}
}

// handleProjectCreated shows the acknowledgement on success. The list is
// not refreshed here; the next poll picks the project up.
func (m *Model) handleProjectCreated(msg projectCreatedMsg) tea.Cmd {
	m.FormState.Submitting = false

	if msg.err != nil {
		m.logger.Warn("create project failed", "error", msg.err)
		m.FormState.SubmitError = errorMessage(msg.err)
		if m.UiState.Mode() == state.ProjectFormMode {
			return m.buildProjectForm()
		}
		return nil
	}

	m.logger.Info("project created", "id", msg.project.ID)
	m.FormState.ResetProjectForm()
	m.UiState.Acknowledge(MsgProjectCreated)
	return nil
}
