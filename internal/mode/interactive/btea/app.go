// ABOUTME: Root AppModel wiring the suggestion engine, request controller, transcript and staging
// ABOUTME: Single event dispatch: keys, mouse, debounce ticks and network completions arrive as msgs

package btea

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/qnachat/internal/api"
	"github.com/mauromedda/qnachat/internal/commands"
	"github.com/mauromedda/qnachat/internal/config"
	"github.com/mauromedda/qnachat/internal/export"
	"github.com/mauromedda/qnachat/internal/log"
	"github.com/mauromedda/qnachat/internal/render"
	"github.com/mauromedda/qnachat/internal/request"
	"github.com/mauromedda/qnachat/internal/staging"
	"github.com/mauromedda/qnachat/internal/storage"
	"github.com/mauromedda/qnachat/internal/suggest"
	"github.com/mauromedda/qnachat/internal/transcript"
)

const (
	inputPrompt      = "❯ "
	inputPlaceholder = "Ask a question, or type /help"
	fallbackNotice   = "Trying LLM fallback..."

	stateGenerating = "Generating..."
	stateUploading  = "Uploading..."
	stateClearing   = "Clearing..."
)

// shared holds state that must survive AppModel value copies.
// Bubble Tea copies the model on each Update; pointer fields are shared
// across copies. Update is single-threaded and goroutines only report
// back through messages.
type shared struct {
	ctx    context.Context
	cancel context.CancelFunc

	scheduler  *suggest.Scheduler
	list       *suggest.List
	lookups    *suggest.Cache
	controller *request.Controller
	transcript *transcript.Reconciler
	staging    *staging.Manager
	markdown   *render.Markdown
	store      storage.Store

	// fallback is the context of the last chat reply, reused when an upload
	// returns the history again.
	fallback transcript.FallbackContext
}

// AppModel is the root Bubble Tea model for the interactive TUI.
type AppModel struct {
	sh       *shared // survives value copies
	deps     AppDeps
	settings *config.Settings

	width, height int

	input       textinput.Model
	viewport    viewport.Model
	footer      FooterModel
	suggestions suggestView
	keys        KeyMap

	// Overlay (nil = no overlay): attach picker, confirmation or notice.
	overlay tea.Model

	// busy is non-empty while an upload or reset is in flight; input is
	// ignored until it completes.
	busy string

	scroll  transcript.ScrollTarget
	offsets []int

	cmdRegistry *commands.Registry
}

// NewAppModel creates an AppModel wired with the given dependencies.
// deps.Backend must be set.
func NewAppModel(deps AppDeps) AppModel {
	ctx, cancel := context.WithCancel(context.Background())
	settings := deps.settings()

	store := deps.Store
	if store == nil {
		store = storage.NewMemory()
	}
	backend := deps.Backend
	limit := settings.SuggestionLimit

	sh := &shared{
		ctx:       ctx,
		cancel:    cancel,
		scheduler: suggest.NewScheduler(settings.Debounce),
		list:      suggest.NewList(),
		lookups: suggest.NewCache(0, func(ctx context.Context, q string) ([]suggest.Suggestion, error) {
			items, err := backend.Autocomplete(ctx, q, limit)
			if err != nil {
				return nil, err
			}
			out := make([]suggest.Suggestion, len(items))
			for i, it := range items {
				out[i] = suggest.Suggestion{Question: it.Question, Answer: it.Answer}
			}
			return out, nil
		}),
		controller: request.NewController(func(ctx context.Context, p request.Payload) (*api.ChatResponse, error) {
			return backend.Chat(ctx, api.ChatRequest{Message: p.Message, ForceLLM: p.ForceLLM})
		}),
		transcript: transcript.NewReconciler(store),
		staging:    staging.NewManager(),
		markdown:   render.NewMarkdown(settings.Theme),
		store:      store,
	}

	keys := KeyMapFrom(deps.Keybindings)

	input := textinput.New()
	input.Prompt = inputPrompt
	input.Placeholder = inputPlaceholder
	input.CharLimit = 4000
	input.Focus()

	m := AppModel{
		sh:          sh,
		deps:        deps,
		settings:    settings,
		input:       input,
		viewport:    viewport.New(0, 0),
		footer:      NewFooterModel().WithServer(settings.ServerURL).WithKeys(keys),
		suggestions: newSuggestView(limit),
		keys:        keys,
		scroll:      transcript.Bottom,
		cmdRegistry: commands.NewRegistry(),
	}
	if target, ok := sh.transcript.Restore(); ok {
		m.scroll = target
		log.Debug("tui: restored %d messages", sh.transcript.Len())
	}
	return m
}

// Init starts the cursor blink.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("qnachat"))
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// --- Layout ---
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-lipgloss.Width(inputPrompt)-1)
		updated, _ := m.footer.Update(msg)
		m.footer = updated.(FooterModel)
		if m.overlay != nil {
			m.overlay, _ = m.overlay.Update(msg)
		}
		m = m.layout()
		return m.refreshTranscript(m.scroll), nil

	case spinner.TickMsg:
		updated, cmd := m.footer.Update(msg)
		m.footer = updated.(FooterModel)
		return m, cmd

	// --- Overlay results ---
	case ConfirmResultMsg:
		m.overlay = nil
		m = m.layout()
		if !msg.Yes {
			return m, nil
		}
		return m.startClear(msg.All)

	case AttachSelectMsg:
		m.overlay = nil
		return m.layout(), m.describeCmd([]string{msg.Path})

	case AttachDismissMsg, DismissOverlayMsg:
		m.overlay = nil
		return m.layout(), nil

	case FileScanResultMsg:
		if picker, ok := m.overlay.(AttachPickerModel); ok {
			m.overlay = picker.SetItems(msg.Items)
			m = m.layout()
		}
		return m, nil

	// --- Suggestions ---
	case suggestTickMsg:
		q, ok := m.sh.scheduler.Fire(msg.seq)
		if !ok {
			return m, nil
		}
		return m, m.lookupCmd(q)

	case suggestResultMsg:
		return m.applySuggestions(msg), nil

	// --- Network completions ---
	case chatDoneMsg:
		return m.finishChat(msg), nil

	case attachDoneMsg:
		return m.finishAttach(msg), nil

	case uploadDoneMsg:
		return m.finishUpload(msg), nil

	case clearDoneMsg:
		return m.finishClear(msg), nil

	// --- Input ---
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View renders the transcript, suggestions, input, overlay and footer.
func (m AppModel) View() string {
	s := Styles()
	sections := []string{m.viewport.View()}

	if m.sh.list.Visible() {
		sections = append(sections, m.suggestions.render(m.sh.list.Items(), m.sh.list.Selected(), m.width))
	}

	sections = append(sections,
		s.Border.Render(strings.Repeat("─", max(0, m.width))),
		m.input.View(),
	)
	if m.overlay != nil {
		sections = append(sections, m.overlay.View())
	}
	sections = append(sections, m.footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// --- Key handling ---

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.sh.controller.State() == request.Sending {
			return m.cancelRequest(), nil
		}
		m.sh.cancel()
		return m, tea.Quit
	}

	if m.overlay != nil {
		updated, cmd := m.overlay.Update(msg)
		m.overlay = updated
		return m, cmd
	}
	if m.busy != "" {
		return m, nil
	}
	m.footer = m.footer.ClearAlert()

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		return m.navigate(suggest.Next), nil
	case key.Matches(msg, m.keys.Previous):
		return m.navigate(suggest.Previous), nil
	case key.Matches(msg, m.keys.Dismiss):
		m.sh.scheduler.Invalidate()
		m.sh.list.Dismiss()
		return m.layout(), nil
	case key.Matches(msg, m.keys.Attach):
		return m.openPicker()
	case key.Matches(msg, m.keys.Fallback):
		return m.triggerFallback()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - max(1, m.viewport.Height-1))
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + max(1, m.viewport.Height-1))
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	m, notify := m.inputChanged()
	return m, tea.Batch(cmd, notify)
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay == nil && m.busy == "" && m.sh.list.Visible() {
		if idx, ok := m.suggestions.indexAt(msg.Y-m.viewport.Height, m.sh.list.Len()); ok {
			switch {
			case msg.Action == tea.MouseActionMotion:
				m.sh.list.Hover(idx)
				return m, nil
			case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
				m.sh.list.Hover(idx)
				return m.commitSuggestion(), nil
			}
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// inputChanged feeds the debounced scheduler.
func (m AppModel) inputChanged() (AppModel, tea.Cmd) {
	text := m.input.Value()
	if commands.IsCommand(strings.TrimSpace(text)) {
		m.sh.scheduler.Invalidate()
		m.sh.list.Clear()
		return m.layout(), nil
	}
	d := m.sh.scheduler.Notify(text)
	if d.Clear {
		m.sh.list.Clear()
		return m.layout(), nil
	}
	seq := d.Seq
	return m, tea.Tick(d.Delay, func(time.Time) tea.Msg { return suggestTickMsg{seq: seq} })
}

func (m AppModel) navigate(dir suggest.Direction) AppModel {
	if !m.sh.list.Visible() {
		step := 1
		if dir == suggest.Previous {
			step = -1
		}
		m.viewport.SetYOffset(m.viewport.YOffset + step)
		return m
	}
	if ev := m.sh.list.Move(dir); ev.Kind == suggest.Active {
		m.suggestions = m.suggestions.follow(ev.Index)
	}
	return m
}

// commitSuggestion copies the selected question into the input without
// sending it.
func (m AppModel) commitSuggestion() AppModel {
	s, ok := m.sh.list.Commit()
	if !ok {
		return m
	}
	m.sh.scheduler.Invalidate()
	m.input.SetValue(s.Question)
	m.input.CursorEnd()
	return m.layout()
}

// --- Submission ---

func (m AppModel) submit() (tea.Model, tea.Cmd) {
	// The send control doubles as stop while a request is outstanding.
	if m.sh.controller.State() == request.Sending {
		return m.cancelRequest(), nil
	}
	if m.sh.list.Visible() && m.sh.list.Selected() >= 0 {
		return m.commitSuggestion(), nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.footer = m.footer.WithAlert("Please enter a message.", alertWarn)
		return m, nil
	}
	m.sh.scheduler.Invalidate()
	m.sh.list.Clear()
	m.input.Reset()
	m = m.layout()

	if commands.IsCommand(text) {
		return m.handleSlashCommand(text)
	}
	return m.sendMessage(request.Payload{Message: text})
}

func (m AppModel) sendMessage(p request.Payload) (AppModel, tea.Cmd) {
	h, err := m.sh.controller.Start(m.sh.ctx, p)
	if err != nil {
		m.footer = m.footer.WithAlert(err.Error(), alertWarn)
		return m, nil
	}

	var target transcript.ScrollTarget
	if p.ForceLLM {
		target = m.sh.transcript.Append(transcript.Message{Role: transcript.System, Text: fallbackNotice})
	} else {
		target = m.sh.transcript.Append(transcript.Message{Role: transcript.User, Text: p.Message})
	}
	m.footer = m.footer.WithState(stateGenerating)
	m = m.refreshTranscript(target)
	return m, tea.Batch(waitCmd(h), m.footer.SpinnerTick())
}

func waitCmd(h *request.Handle) tea.Cmd {
	return func() tea.Msg {
		return chatDoneMsg{handle: h, outcome: h.Wait()}
	}
}

func (m AppModel) cancelRequest() AppModel {
	out, ok := m.sh.controller.Cancel()
	if !ok {
		return m
	}
	target := m.sh.transcript.Append(transcript.Message{Role: transcript.System, Text: out.Advisory()})
	m.footer = m.footer.WithState("")
	return m.refreshTranscript(target)
}

func (m AppModel) finishChat(msg chatDoneMsg) AppModel {
	out, ok := m.sh.controller.Finish(msg.handle, msg.outcome)
	if !ok {
		return m
	}
	m.footer = m.footer.WithState("")

	if out.Status != request.Completed {
		target := m.sh.transcript.Append(transcript.Message{Role: transcript.System, Text: out.Advisory()})
		return m.refreshTranscript(target)
	}

	resp := out.Response
	question := resp.LastQuestion
	if question == "" {
		question = out.Payload.Message
	}
	fc := transcript.FallbackContext{
		Available:   resp.NoQnAMatch && !out.Payload.ForceLLM,
		NoMatchText: resp.NoQnAMatchMessage,
		Question:    question,
	}
	m.sh.fallback = fc
	target := m.sh.transcript.ApplyResponse(resp.Response, resp.FullHistory, fc)
	return m.refreshTranscript(target)
}

// triggerFallback re-asks the latest unmatched question with force_llm.
func (m AppModel) triggerFallback() (AppModel, tea.Cmd) {
	if err := m.fallbackAvailable(); err != nil {
		m.footer = m.footer.WithAlert(err.Error(), alertWarn)
		return m, nil
	}
	i, msg, _ := m.sh.transcript.LatestFallback()
	m.sh.transcript.DisableFallback(i)
	return m.sendMessage(request.Payload{Message: msg.FallbackQuestion, ForceLLM: true})
}

func (m AppModel) fallbackAvailable() error {
	if m.sh.controller.State() == request.Sending {
		return request.ErrAlreadyActive
	}
	_, msg, ok := m.sh.transcript.LatestFallback()
	if !ok || msg.FallbackQuestion == "" {
		return errors.New("no unanswered question to send to the LLM")
	}
	return nil
}

// --- Suggestions ---

func (m AppModel) lookupCmd(query string) tea.Cmd {
	ctx := m.sh.ctx
	lookups := m.sh.lookups
	return func() tea.Msg {
		items, err := lookups.Lookup(ctx, query)
		return suggestResultMsg{query: query, items: items, err: err}
	}
}

func (m AppModel) applySuggestions(msg suggestResultMsg) AppModel {
	if msg.err != nil {
		log.Debug("tui: autocomplete %q: %v", msg.query, msg.err)
		if m.sh.scheduler.IsCurrent(msg.query) {
			m.sh.list.Clear()
		}
		return m.layout()
	}
	ev := suggest.Apply(m.sh.scheduler, m.sh.list, msg.query, msg.items)
	if ev.Kind != suggest.None {
		m.suggestions = m.suggestions.reset()
	}
	return m.layout()
}

// --- Staging and upload ---

func (m AppModel) openPicker() (AppModel, tea.Cmd) {
	picker := NewAttachPickerModel()
	updated, _ := picker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.overlay = updated
	root := m.deps.ProjectRoot
	if root == "" {
		root, _ = os.Getwd()
	}
	return m.layout(), scanProjectFilesCmd(root)
}

func (m AppModel) describeCmd(paths []string) tea.Cmd {
	ctx := m.sh.ctx
	return func() tea.Msg {
		files, err := staging.Describe(ctx, paths)
		return attachDoneMsg{files: files, err: err}
	}
}

func (m AppModel) finishAttach(msg attachDoneMsg) AppModel {
	if msg.err != nil {
		m.footer = m.footer.WithAlert(msg.err.Error(), alertError)
		return m
	}
	before := m.sh.staging.Len()
	err := m.sh.staging.Add(msg.files)
	added := m.sh.staging.Len() - before
	m = m.syncStaging()

	var de *staging.DisallowedError
	switch {
	case errors.As(err, &de):
		m.footer = m.footer.WithAlert(de.Error(), alertError)
	case added > 0:
		m.footer = m.footer.WithAlert(fmt.Sprintf("Staged %d file(s). Use /upload to send.", added), alertInfo)
	default:
		m.footer = m.footer.WithAlert("Already staged.", alertInfo)
	}
	return m
}

func (m AppModel) startUpload(action api.UploadAction) (AppModel, tea.Cmd) {
	files := m.sh.staging.Staged()
	if len(files) == 0 {
		m.footer = m.footer.WithAlert("No files staged. Use /attach first.", alertWarn)
		return m, nil
	}

	m.busy = stateUploading
	m.footer = m.footer.WithState(stateUploading)
	ctx := m.sh.ctx
	backend := m.deps.Backend
	upload := func() tea.Msg {
		fresh, stale := staging.Verify(ctx, files)
		if len(fresh) == 0 {
			return uploadDoneMsg{action: action, stale: stale, skipped: true}
		}
		parts := make([]api.UploadFile, len(fresh))
		for i, f := range fresh {
			parts[i] = api.FileFromPath(f.Name, f.Path)
		}
		resp, err := backend.Upload(ctx, parts, action)
		return uploadDoneMsg{action: action, resp: resp, err: err, stale: stale}
	}
	return m, tea.Batch(upload, m.footer.SpinnerTick())
}

func (m AppModel) finishUpload(msg uploadDoneMsg) AppModel {
	m.busy = ""
	m.footer = m.footer.WithState("")

	dropped := make([]string, len(msg.stale))
	for i, f := range msg.stale {
		m.sh.staging.Remove(f.Key)
		dropped[i] = f.Key.String()
	}
	m = m.syncStaging()

	if msg.skipped {
		m.footer = m.footer.WithAlert("Staged files changed on disk since they were attached. Attach them again.", alertWarn)
		return m
	}

	if msg.err != nil {
		var se *api.ServerError
		if errors.As(msg.err, &se) {
			m.footer = m.footer.WithAlert("Upload failed: "+se.Message, alertError)
		} else {
			log.Warn("tui: upload: %v", msg.err)
			m.footer = m.footer.WithAlert("An error occurred while uploading the file.", alertError)
		}
		return m
	}

	m.sh.staging.CommitBaseline()
	if err := m.sh.store.Set(storage.SlotFileContent, msg.resp.Content); err != nil {
		log.Warn("tui: saving %s: %v", storage.SlotFileContent, err)
	}
	m.sh.lookups.Flush()

	target := transcript.Bottom
	if msg.resp.HasChatHistory() {
		target = m.sh.transcript.Rebuild(msg.resp.ChatHistory, m.sh.fallback)
	}
	if len(dropped) > 0 {
		m.footer = m.footer.WithAlert("Upload successful. Dropped outdated: "+strings.Join(dropped, ", ")+".", alertWarn)
	} else {
		m.footer = m.footer.WithAlert("Upload successful.", alertInfo)
	}
	return m.syncStaging().refreshTranscript(target)
}

func (m AppModel) syncStaging() AppModel {
	m.footer = m.footer.WithStaged(m.sh.staging.Labels(), m.sh.staging.IsDirty())
	return m
}

// --- Reset ---

func (m AppModel) startClear(all bool) (AppModel, tea.Cmd) {
	m.busy = stateClearing
	m.footer = m.footer.WithState(stateClearing)
	ctx := m.sh.ctx
	backend := m.deps.Backend
	clearCmd := func() tea.Msg {
		var (
			resp *api.StatusResponse
			err  error
		)
		if all {
			resp, err = backend.ClearAll(ctx)
		} else {
			resp, err = backend.ClearChat(ctx)
		}
		return clearDoneMsg{all: all, resp: resp, err: err}
	}
	return m, tea.Batch(clearCmd, m.footer.SpinnerTick())
}

// finishClear clears local caches unless the server could not be reached.
// A reply without status "success" still clears them.
func (m AppModel) finishClear(msg clearDoneMsg) AppModel {
	m.busy = ""
	m.footer = m.footer.WithState("")

	if msg.err != nil && !errors.Is(msg.err, api.ErrNotSuccessful) {
		log.Warn("tui: clear (all=%t): %v", msg.all, msg.err)
		if msg.all {
			m.footer = m.footer.WithAlert("An error occurred while clearing all data. Please try again.", alertError)
		} else {
			m.footer = m.footer.WithAlert("An error occurred while clearing the chat. Please try again.", alertError)
		}
		return m
	}

	if msg.all {
		if err := m.sh.store.Clear(); err != nil {
			log.Warn("tui: clearing storage: %v", err)
		}
		m.sh.transcript.Forget()
		m.sh.staging.Clear()
		m.sh.staging.ResetBaseline()
		m.sh.lookups.Flush()
	} else {
		m.sh.transcript.Reset()
	}
	m.sh.fallback = transcript.FallbackContext{}

	switch {
	case msg.err != nil:
		m.footer = m.footer.WithAlert("The server did not confirm the reset; local data was cleared.", alertWarn)
	case msg.all:
		m.footer = m.footer.WithAlert("All data cleared.", alertInfo)
	default:
		m.footer = m.footer.WithAlert("Chat history cleared.", alertInfo)
	}
	return m.syncStaging().refreshTranscript(transcript.Bottom)
}

// --- Export ---

func (m AppModel) exportTranscript(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if export.IsHTMLPath(path) {
		err = export.ExportHTML(m.sh.transcript.Messages(), m.settings.ServerURL, f)
	} else {
		err = m.sh.transcript.Export(f)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// --- Layout ---

// layout sizes the transcript viewport to the space left by the other sections.
func (m AppModel) layout() AppModel {
	reserved := 2 + lipgloss.Height(m.footer.View())
	if m.sh.list.Visible() {
		reserved += m.suggestions.rows(m.sh.list.Len())
	}
	if m.overlay != nil {
		reserved += lipgloss.Height(m.overlay.View())
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-reserved)
	return m
}

// refreshTranscript re-renders the transcript and scrolls to target.
func (m AppModel) refreshTranscript(target transcript.ScrollTarget) AppModel {
	m.scroll = target
	if m.width == 0 {
		return m
	}
	msgs := m.sh.transcript.Messages()
	if len(msgs) == 0 {
		m.offsets = nil
		m.viewport.SetContent(welcomeText(m.deps.Version, m.settings.ServerURL))
		m.viewport.GotoTop()
		return m
	}
	content, offsets := renderTranscript(m.sh.markdown, msgs, m.width, fallbackHint(m.keys.Fallback))
	m.offsets = offsets
	m.viewport.SetContent(content)
	if y, ok := scrollOffset(target, offsets); ok {
		m.viewport.SetYOffset(y)
	} else {
		m.viewport.GotoBottom()
	}
	return m
}

func welcomeText(version, server string) string {
	s := Styles()
	title := s.Bold.Render("qnachat")
	if version != "" {
		title += " " + s.Dim.Render(version)
	}
	return title + "\n" +
		s.Dim.Render("Connected to "+server) + "\n\n" +
		s.Dim.Render("Type a question and press enter. Suggestions appear as you type; /help lists commands.")
}
