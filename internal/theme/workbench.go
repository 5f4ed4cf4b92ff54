package theme

import (
	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/scheme"
)

// Element colours shared across the workbench groups. Theme changes should
// happen here rather than in individual keys.
type elements struct {
	s scheme.Scheme

	primary        color.Color
	secondary      color.Color
	primaryHover   color.Color
	secondaryHover color.Color

	primaryBackground color.Color
	lightBackground   color.Color
	anotherBackground color.Color
	widgetBackground  color.Color
	dragDrop          color.Color
	inlays            color.Color

	borders     color.Color
	transparent color.Color
	shadow      color.Color

	highlightLine           color.Color
	highlightRange          color.Color
	highlightSelection      color.Color
	highlightSelectionMatch color.Color
	highlightMatch          color.Color
	highlightAddlMatch      color.Color
	highlightRead           color.Color
	highlightWrite          color.Color

	diffAdded     color.Color
	diffRemoved   color.Color
	mergeCurrent  color.Color
	mergeIncoming color.Color
	mergeCommon   color.Color

	gitAdded       color.Color
	gitModified    color.Color
	gitDeleted     color.Color
	gitUntracked   color.Color
	gitIgnored     color.Color
	gitConflicting color.Color
	gitSubmodule   color.Color

	info    color.Color
	warning color.Color
	err     color.Color
}

func newElements(s scheme.Scheme) elements {
	r := s.MustRole
	const white color.Color = "#ffffff"

	e := elements{
		s: s,

		primary:        r("primary"),
		secondary:      r("secondary"),
		primaryHover:   r("primaryFixedDim"),
		secondaryHover: r("secondaryFixedDim"),

		primaryBackground: r("surfaceContainerHigh"),
		lightBackground:   r("surfaceContainer"),
		anotherBackground: r("surfaceDim"),
		widgetBackground:  color.MustAlpha(r("surface"), color.OpacityWidget),
		dragDrop:          color.MustAlpha(r("primary"), color.OpacityDrop),
		inlays:            r("surfaceVariant"),

		borders:     color.MustParse("#0000"),
		transparent: color.MustParse("#0000"),
		shadow:      color.MustAlpha(r("primary"), color.OpacityShadow),

		highlightLine:           r("tertiary"),
		highlightRange:          r("tertiary"),
		highlightSelection:      r("tertiary"),
		highlightSelectionMatch: white,
		highlightMatch:          white,
		highlightAddlMatch:      white,
		highlightRead:           white,
		highlightWrite:          white,

		diffAdded:     white,
		diffRemoved:   white,
		mergeCurrent:  white,
		mergeIncoming: white,
		mergeCommon:   white,

		gitAdded:       white,
		gitModified:    white,
		gitDeleted:     white,
		gitUntracked:   white,
		gitIgnored:     white,
		gitConflicting: white,
		gitSubmodule:   white,

		info:    r("tertiary"),
		warning: white,
		err:     r("error"),
	}
	return e
}

func (e elements) role(name string) Value {
	return Set(e.s.MustRole(name))
}

func alpha(c color.Color, opacity float64) Value {
	return Set(color.MustAlpha(c, opacity))
}

// Workbench returns the workbench groups in merge order. A key repeated in a
// later group overrides the earlier one.
func Workbench(s scheme.Scheme) []Group {
	e := newElements(s)
	return []Group{
		activityBarGroup(e),
		badgeGroup(e),
		baseGroup(e),
		buttonGroup(e),
		contrastGroup(),
		diffEditorGroup(e),
		dropdownGroup(e),
		editorGroup(e),
		editorGroupsGroup(e),
		editorOverviewRulerGroup(e),
		editorWidgetGroup(e),
		minimapGroup(e),
		extensionGroup(e),
		quickInputGroup(e),
		gitDecorationGroup(e),
		inputGroup(e),
		listsTreesGroup(e),
		mergeConflictsGroup(e),
		menuBarGroup(),
		panelGroup(e),
		peekViewGroup(e),
		progressBarGroup(e),
		scrollBarGroup(e),
		sideBarGroup(e),
		statusBarGroup(e),
		tabGroup(e),
		textGroup(e),
		titleBarGroup(e),
		debugGroup(e),
		welcomePageGroup(e),
		breadcrumbsGroup(e),
		gitLensGroup(e),
		terminalGroup(e),
	}
}

// Not a high contrast theme.
func contrastGroup() Group {
	return Group{Name: "contrast", Colors: map[string]Value{
		"contrastActiveBorder": Unset,
		"contrastBorder":       Unset,
	}}
}

func baseGroup(e elements) Group {
	return Group{Name: "base", Colors: map[string]Value{
		"focusBorder":           Set(e.transparent),
		"foreground":            e.role("tertiary"),
		"selection.background":  alpha(e.primary, 0.1),
		"descriptionForeground": Set(e.info),
		"errorForeground":       Set(e.err),
	}}
}

func textGroup(e elements) Group {
	return Group{Name: "text", Colors: map[string]Value{
		"textBlockQuote.background": e.role("surfaceDim"),
		"textBlockQuote.border":     e.role("surfaceDim"),
		"textCodeBlock.background":  e.role("surfaceDim"),
		"textLink.foreground":       Set(e.secondary),
		"textLink.activeForeground": Set(e.secondaryHover),
		"textPreformat.foreground":  Set(e.primary),
		"textSeparator.foreground":  Unset,
	}}
}

func buttonGroup(e elements) Group {
	return Group{Name: "button", Colors: map[string]Value{
		"button.background":      Set(e.primary),
		"button.foreground":      e.role("onPrimary"),
		"button.hoverBackground": Set(e.primaryHover),
	}}
}

func dropdownGroup(e elements) Group {
	return Group{Name: "dropdown", Colors: map[string]Value{
		"dropdown.background":     Set(e.anotherBackground),
		"dropdown.listBackground": Set(e.widgetBackground),
		"dropdown.foreground":     e.role("onSurface"),
		"dropdown.border":         Set(e.borders),
	}}
}

// Slider is primary with rising opacity per state.
func scrollBarGroup(e elements) Group {
	return Group{Name: "scrollBar", Colors: map[string]Value{
		"scrollbar.shadow":                 Set(e.shadow),
		"scrollbarSlider.background":       alpha(e.primary, 0.1),
		"scrollbarSlider.hoverBackground":  alpha(e.primary, 0.25),
		"scrollbarSlider.activeBackground": alpha(e.primary, 0.4),
	}}
}

func badgeGroup(e elements) Group {
	return Group{Name: "badge", Colors: map[string]Value{
		"badge.background": e.role("primary"),
		"badge.foreground": e.role("onPrimary"),
	}}
}

func progressBarGroup(e elements) Group {
	return Group{Name: "progressBar", Colors: map[string]Value{
		"progressBar.background": e.role("surfaceDim"),
	}}
}

func listsTreesGroup(e elements) Group {
	return Group{Name: "listsTrees", Colors: map[string]Value{
		"list.hoverBackground": alpha(e.primary, 0.05),
		"list.hoverForeground": e.role("onPrimary"),
		// keyboard focus is a touch stronger than hover
		"list.focusBackground":             alpha(e.primary, 0.2),
		"list.focusForeground":             e.role("onPrimary"),
		"list.activeSelectionBackground":   alpha(e.primary, 0.1),
		"list.activeSelectionForeground":   e.role("onPrimary"),
		"list.inactiveSelectionBackground": Set(e.primaryBackground),
		"list.inactiveSelectionForeground": e.role("onPrimary"),
		"list.inactiveFocusBackground":     Unset,
		"list.dropBackground":              Set(e.dragDrop),
		"list.highlightForeground":         e.role("onPrimary"),
		"list.errorForeground":             Set(e.err),
		"list.warningForeground":           Set(e.warning),
		"list.invalidItemForeground":       Unset,
		"tree.indentGuidesStroke":          Set(e.borders),
	}}
}

func inputGroup(e elements) Group {
	return Group{Name: "input", Colors: map[string]Value{
		"input.background":                  Set(e.lightBackground),
		"input.border":                      Set(e.borders),
		"input.foreground":                  e.role("onSurface"),
		"input.placeholderForeground":       e.role("onSurface"),
		"inputOption.activeBorder":          Set(e.borders),
		"inputOption.activeBackground":      alpha(e.primary, 0.15),
		"inputValidation.errorBackground":   Set(e.err),
		"inputValidation.errorBorder":       Set(e.err),
		"inputValidation.infoBackground":    Set(e.info),
		"inputValidation.infoBorder":        Set(e.info),
		"inputValidation.warningBackground": Set(e.warning),
		"inputValidation.warningBorder":     Set(e.warning),
	}}
}

func editorGroupsGroup(e elements) Group {
	return Group{Name: "editorGroup", Colors: map[string]Value{
		"editorGroup.border":                 Set(e.borders),
		"editorGroup.dropBackground":         Set(e.dragDrop),
		"editorGroup.emptyBackground":        Unset,
		"editorGroup.focusedEmptyBorder":     Set(e.transparent),
		"editorGroupHeader.noTabsBackground": Unset,
		"editorGroupHeader.tabsBackground":   Set(e.primaryBackground),
		"editorGroupHeader.tabsBorder":       Set(e.borders),
		"editorGroupHeader.border":           Set(e.borders),
	}}
}

func tabGroup(e elements) Group {
	return Group{Name: "tab", Colors: map[string]Value{
		// border sits between tabs, match the background to hide it
		"tab.border":                      Set(e.primaryBackground),
		"tab.activeBorder":                Set(e.transparent),
		"tab.activeBorderTop":             Set(e.borders),
		"tab.activeBackground":            Set(e.primaryBackground),
		"tab.activeForeground":            e.role("onSurface"),
		"tab.inactiveBackground":          Set(e.primaryBackground),
		"tab.inactiveForeground":          e.role("onSurface"),
		"tab.hoverBackground":             Unset,
		"tab.hoverBorder":                 e.role("onSurface"),
		"tab.unfocusedActiveBorder":       Unset,
		"tab.unfocusedActiveBorderTop":    Unset,
		"tab.unfocusedActiveForeground":   Unset,
		"tab.unfocusedHoverBackground":    Unset,
		"tab.unfocusedHoverBorder":        Unset,
		"tab.unfocusedInactiveForeground": Unset,
	}}
}

func editorGroup(e elements) Group {
	return Group{Name: "editor", Colors: map[string]Value{
		"editor.background": Set(e.lightBackground),
		"editor.foreground": e.role("onPrimary"),

		"editorLineNumber.foreground":       e.role("onSurface"),
		"editorLineNumber.activeForeground": e.role("onSurface"),

		"editor.lineHighlightBackground":  alpha(e.highlightLine, 0.07),
		"editor.lineHighlightBorder":      Set(e.transparent),
		"editor.rangeHighlightBackground": alpha(e.highlightRange, 0.07),
		"editor.rangeHighlightBorder":     Set(e.transparent),

		"editor.selectionBackground":          alpha(e.highlightSelection, 0.3),
		"editor.selectionForeground":          Unset,
		"editor.inactiveSelectionBackground":  Unset,
		"editor.selectionHighlightBackground": alpha(e.highlightSelection, 0.1),
		"editor.selectionHighlightBorder":     Set(e.highlightSelectionMatch),

		"editor.findMatchBackground":          Set(e.transparent),
		"editor.findMatchBorder":              alpha(e.highlightMatch, 0.55),
		"editor.findMatchHighlightBackground": Set(e.transparent),
		"editor.findMatchHighlightBorder":     alpha(e.highlightAddlMatch, 0.8),
		"editor.findRangeHighlightBackground": alpha(e.highlightRange, 0.07),
		"editor.findRangeHighlightBorder":     Unset,

		"editor.wordHighlightBackground":       alpha(e.highlightRead, 0.05),
		"editor.wordHighlightBorder":           alpha(e.highlightRead, 0.25),
		"editor.wordHighlightStrongBackground": alpha(e.highlightWrite, 0.05),
		"editor.wordHighlightStrongBorder":     alpha(e.highlightWrite, 0.25),
		"editor.hoverHighlightBackground":      alpha(e.highlightRange, 0.25),

		// background is the text under the cursor, foreground the cursor itself
		"editorCursor.background": Unset,
		"editorCursor.foreground": Set(e.primary),

		"editorLink.activeForeground": Set("#43fdd5"),

		"editorInlayHint.background": Set(e.transparent),
		"editorInlayHint.foreground": Set(e.inlays),

		"editorWhitespace.foreground":        Unset,
		"editorIndentGuide.background":       Unset,
		"editorIndentGuide.activeBackground": Set(e.dragDrop),
		"editorRuler.foreground":             Set(e.dragDrop),
		"editorCodeLens.foreground":          alpha(e.s.MustRole("tertiary"), 0.5),

		"editorBracketMatch.background": Unset,
		"editorBracketMatch.border":     e.role("tertiary"),

		"editorUnnecessaryCode.border":  Unset,
		"editorUnnecessaryCode.opacity": Set("#0000006e"),

		"editorGutter.background":         Unset,
		"editorGutter.addedBackground":    Set(e.gitAdded),
		"editorGutter.modifiedBackground": Set(e.gitModified),
		"editorGutter.deletedBackground":  Set(e.gitDeleted),

		"editorError.foreground":   Set(e.err),
		"editorError.border":       Unset,
		"editorWarning.foreground": Set(e.warning),
		"editorWarning.border":     Unset,
		"editorInfo.foreground":    Set(e.info),
		"editorInfo.border":        Unset,
		"editorHint.foreground":    Unset,
		"editorHint.border":        Unset,

		"editor.snippetTabstopHighlightBackground":      alpha(e.primary, 0.1),
		"editor.snippetTabstopHighlightBorder":          e.role("primaryFixedDim"),
		"editor.snippetFinalTabstopHighlightBackground": alpha(e.primary, 0.1),
		"editor.snippetFinalTabstopHighlightBorder":     e.role("primaryFixed"),
	}}
}

func editorOverviewRulerGroup(e elements) Group {
	return Group{Name: "editorOverviewRuler", Colors: map[string]Value{
		"editorOverviewRuler.border":                        Set(e.borders),
		"editorOverviewRuler.findMatchForeground":           Unset,
		"editorOverviewRuler.rangeHighlightForeground":      Unset,
		"editorOverviewRuler.selectionHighlightForeground":  Unset,
		"editorOverviewRuler.wordHighlightForeground":       Unset,
		"editorOverviewRuler.wordHighlightStrongForeground": Unset,
		"editorOverviewRuler.bracketMatchForeground":        Unset,
		"editorOverviewRuler.errorForeground":               Set(e.err),
		"editorOverviewRuler.warningForeground":             Set(e.warning),
		"editorOverviewRuler.infoForeground":                Set(e.info),
		"editorOverviewRuler.modifiedForeground":            Set(e.gitModified),
		"editorOverviewRuler.addedForeground":               Set(e.gitAdded),
		"editorOverviewRuler.deletedForeground":             Set(e.gitDeleted),
	}}
}

func editorWidgetGroup(e elements) Group {
	return Group{Name: "editorWidget", Colors: map[string]Value{
		"editorWidget.background":                  Set(e.widgetBackground),
		"editorWidget.border":                      e.role("onSurface"),
		"editorWidget.resizeBorder":                Set(e.primaryHover),
		"editorSuggestWidget.background":           Unset,
		"editorSuggestWidget.border":               Unset,
		"editorSuggestWidget.foreground":           Unset,
		"editorSuggestWidget.highlightForeground":  Unset,
		"editorSuggestWidget.selectedBackground":   Unset,
		"editorHoverWidget.background":             Unset,
		"editorHoverWidget.border":                 Unset,
		"editorMarkerNavigation.background":        Set(e.widgetBackground),
		"editorMarkerNavigationError.background":   Set(e.err),
		"editorMarkerNavigationWarning.background": Set(e.warning),
		"editorMarkerNavigationInfo.background":    Set(e.info),
	}}
}

func minimapGroup(e elements) Group {
	return Group{Name: "minimap", Colors: map[string]Value{
		"minimap.findMatchHighlight":       alpha(e.highlightMatch, 0.75),
		"minimapGutter.addedBackground":    Set(e.gitAdded),
		"minimapGutter.modifiedBackground": Set(e.gitModified),
		"minimapGutter.deletedBackground":  Set(e.gitDeleted),
	}}
}

func peekViewGroup(e elements) Group {
	return Group{Name: "peekView", Colors: map[string]Value{
		"peekView.border":                         e.role("onPrimary"),
		"peekViewEditor.background":               Set(e.primaryBackground),
		"peekViewEditorGutter.background":         Set(e.primaryBackground),
		"peekViewEditor.matchHighlightBackground": alpha(e.s.MustRole("onPrimary"), 0.15),
		"peekViewEditor.matchHighlightBorder":     Set(e.transparent),
		"peekViewResult.background":               Set(e.primaryBackground),
		"peekViewResult.fileForeground":           e.role("onSurface"),
		"peekViewResult.lineForeground":           e.role("onSurface"),
		"peekViewResult.matchHighlightBackground": alpha(e.highlightRange, 0.2),
		"peekViewResult.selectionBackground":      alpha(e.highlightRange, 0.1),
		"peekViewResult.selectionForeground":      Set(e.secondary),
		"peekViewTitle.background":                Set(e.primaryBackground),
		"peekViewTitleLabel.foreground":           Set(e.secondary),
		"peekViewTitleDescription.foreground":     e.role("onSurface"),
	}}
}

func activityBarGroup(e elements) Group {
	badge := badgeGroup(e).Colors
	return Group{Name: "activityBar", Colors: map[string]Value{
		"activityBar.background":         Set(e.primaryBackground),
		"activityBar.dropBackground":     Set(e.dragDrop),
		"activityBar.border":             Set(e.borders),
		"activityBar.foreground":         e.role("onPrimary"),
		"activityBar.inactiveForeground": alpha(e.s.MustRole("onPrimary"), 0.6),
		"activityBar.activeBorder":       e.role("onPrimary"),
		"activityBarBadge.background":    badge["badge.background"],
		"activityBarBadge.foreground":    badge["badge.foreground"],
	}}
}

func panelGroup(e elements) Group {
	return Group{Name: "panel", Colors: map[string]Value{
		"panel.background":              Set(e.primaryBackground),
		"panel.border":                  Set(e.borders),
		"panel.dropBackground":          Set(e.dragDrop),
		"panelTitle.activeBorder":       Set(e.primary),
		"panelTitle.activeForeground":   e.role("onSurface"),
		"panelTitle.inactiveForeground": e.role("onSurface"),
	}}
}

func sideBarGroup(e elements) Group {
	return Group{Name: "sideBar", Colors: map[string]Value{
		"sideBar.background":              Set(e.primaryBackground),
		"sideBar.foreground":              e.role("onSurface"),
		"sideBar.border":                  Set(e.borders),
		"sideBar.dropBackground":          Set(e.dragDrop),
		"sideBarTitle.foreground":         e.role("onSurface"),
		"sideBarSectionHeader.background": Set(e.primaryBackground),
		"sideBarSectionHeader.foreground": e.role("onSurface"),
		"sideBarSectionHeader.border":     Set(e.transparent),
	}}
}

func statusBarGroup(e elements) Group {
	return Group{Name: "statusBar", Colors: map[string]Value{
		"statusBar.background":                   Set(e.primaryBackground),
		"statusBar.foreground":                   e.role("onSurface"),
		"statusBar.border":                       Set(e.borders),
		"statusBar.debuggingBackground":          Set(e.primaryBackground),
		"statusBar.debuggingForeground":          Set(e.secondary),
		"statusBar.debuggingBorder":              Set(e.primary),
		"statusBar.noFolderBackground":           e.role("surfaceBright"),
		"statusBar.noFolderForeground":           e.role("onSurface"),
		"statusBar.noFolderBorder":               e.role("onPrimary"),
		"statusBarItem.prominentBackground":      e.role("onPrimary"),
		"statusBarItem.prominentHoverBackground": e.role("onPrimaryFixedVariant"),
		"statusBarItem.hoverBackground":          alpha(e.secondary, 0.2),
		"statusBarItem.activeBackground":         e.role("onPrimary"),
	}}
}

func titleBarGroup(e elements) Group {
	return Group{Name: "titleBar", Colors: map[string]Value{
		"titleBar.activeBackground":   e.role("primary"),
		"titleBar.activeForeground":   e.role("onPrimary"),
		"titleBar.border":             Set(e.borders),
		"titleBar.inactiveBackground": Unset,
		"titleBar.inactiveForeground": Unset,
	}}
}

func menuBarGroup() Group {
	return Group{Name: "menuBar", Colors: map[string]Value{
		"menubar.selectionForeground": Unset,
		"menubar.selectionBackground": Unset,
		"menubar.selectionBorder":     Unset,
		"menu.foreground":             Unset,
		"menu.background":             Unset,
		"menu.selectionForeground":    Unset,
		"menu.selectionBackground":    Unset,
		"menu.selectionBorder":        Unset,
	}}
}

func extensionGroup(e elements) Group {
	return Group{Name: "extension", Colors: map[string]Value{
		"extensionButton.prominentForeground":      Set(e.secondary),
		"extensionButton.prominentBackground":      Set(e.primary),
		"extensionButton.prominentHoverBackground": Set(e.primaryHover),
	}}
}

func quickInputGroup(e elements) Group {
	return Group{Name: "quickInput", Colors: map[string]Value{
		"pickerGroup.border":              Set(e.borders),
		"pickerGroup.foreground":          Set(e.secondary),
		"quickInput.background":           Set(e.widgetBackground),
		"quickInput.foreground":           e.role("onSurface"),
		"quickInput.list.focusBackground": alpha(e.primary, 0.2),
	}}
}

func gitDecorationGroup(e elements) Group {
	return Group{Name: "gitDecoration", Colors: map[string]Value{
		"gitDecoration.addedResourceForeground":       Set(e.gitAdded),
		"gitDecoration.modifiedResourceForeground":    Set(e.gitModified),
		"gitDecoration.deletedResourceForeground":     Set(e.gitDeleted),
		"gitDecoration.untrackedResourceForeground":   Set(e.gitUntracked),
		"gitDecoration.ignoredResourceForeground":     Set(e.gitIgnored),
		"gitDecoration.conflictingResourceForeground": Set(e.gitConflicting),
		"gitDecoration.submoduleResourceForeground":   Set(e.gitSubmodule),
	}}
}

// Borders on diff lines are too noisy.
func diffEditorGroup(e elements) Group {
	return Group{Name: "diffEditor", Colors: map[string]Value{
		"diffEditor.insertedTextBackground": alpha(e.diffAdded, 0.09),
		"diffEditor.insertedTextBorder":     Unset,
		"diffEditor.removedTextBackground":  alpha(e.diffRemoved, 0.09),
		"diffEditor.removedTextBorder":      Unset,
		"diffEditor.border":                 Set(e.borders),
	}}
}

func mergeConflictsGroup(e elements) Group {
	return Group{Name: "mergeConflicts", Colors: map[string]Value{
		"merge.currentHeaderBackground":                 alpha(e.mergeCurrent, 0.2),
		"merge.currentContentBackground":                alpha(e.mergeCurrent, 0.075),
		"merge.incomingHeaderBackground":                alpha(e.mergeIncoming, 0.2),
		"merge.incomingContentBackground":               alpha(e.mergeIncoming, 0.075),
		"merge.border":                                  Set(e.borders),
		"merge.commonContentBackground":                 alpha(e.mergeCommon, 0.075),
		"merge.commonHeaderBackground":                  alpha(e.mergeCommon, 0.2),
		"editorOverviewRuler.currentContentForeground":  alpha(e.mergeCurrent, 0.3),
		"editorOverviewRuler.incomingContentForeground": alpha(e.mergeIncoming, 0.3),
		"editorOverviewRuler.commonContentForeground":   alpha(e.mergeCommon, 0.3),
	}}
}

func debugGroup(e elements) Group {
	return Group{Name: "debug", Colors: map[string]Value{
		"debugToolBar.background":                     alpha(e.s.MustRole("surfaceBright"), 0.87),
		"debugToolBar.border":                         Set(e.transparent),
		"editor.stackFrameHighlightBackground":        alpha(e.highlightRead, 0.12),
		"editor.focusedStackFrameHighlightBackground": alpha(e.highlightWrite, 0.1),
		"debugExceptionWidget.background":             alpha(e.gitConflicting, 0.45),
		"debugExceptionWidget.border":                 Set(e.err),
	}}
}

func welcomePageGroup(e elements) Group {
	return Group{Name: "welcomePage", Colors: map[string]Value{
		"welcomePage.buttonBackground":         e.role("surfaceBright"),
		"welcomePage.buttonHoverBackground":    e.role("surfaceDim"),
		"walkThrough.embeddedEditorBackground": e.role("surface"),
	}}
}

func breadcrumbsGroup(e elements) Group {
	return Group{Name: "breadcrumbs", Colors: map[string]Value{
		"breadcrumb.background":                Set(e.primaryBackground),
		"breadcrumb.foreground":                e.role("tertiary"),
		"breadcrumb.focusForeground":           Set(e.secondary),
		"breadcrumb.activeSelectionForeground": Set(e.secondary),
		"breadcrumbPicker.background":          Set(e.widgetBackground),
	}}
}

func gitLensGroup(e elements) Group {
	return Group{Name: "gitLens", Colors: map[string]Value{
		"gitlens.trailingLineBackgroundColor":      Unset,
		"gitlens.trailingLineForegroundColor":      Set("#f425fc59"),
		"gitlens.lineHighlightBackgroundColor":     Set("#f425fc26"),
		"gitlens.lineHighlightOverviewRulerColor":  Set("#f425fc80"),
		"gitlens.gutterBackgroundColor":            Set(e.primaryBackground),
		"gitlens.gutterForegroundColor":            Set("#c6d2d1"),
		"gitlens.gutterUncommittedForegroundColor": Set("#85a5a0"),
	}}
}

func terminalGroup(e elements) Group {
	return Group{Name: "terminal", Colors: map[string]Value{
		"terminal.background":          Set(e.primaryBackground),
		"terminal.foreground":          Set("#a8d2d4"),
		"terminal.border":              Set(e.borders),
		"terminal.selectionBackground": Set("#874df84d"),
		"terminalCursor.background":    Set("#ff428e"),
		"terminalCursor.foreground":    Set("#defff7"),

		"terminal.ansiBlack":         Set("#30317d"),
		"terminal.ansiBrightBlack":   Set("#391ab5"),
		"terminal.ansiBlue":          Set("#7dd9e4"),
		"terminal.ansiBrightBlue":    Set("#84f9fe"),
		"terminal.ansiMagenta":       Set("#fa61b8"),
		"terminal.ansiBrightMagenta": Set("#d5358f"),
		"terminal.ansiRed":           Set("#ff5395"),
		"terminal.ansiBrightRed":     Set("#ff427b"),
		"terminal.ansiGreen":         Set("#d8ff4e"),
		"terminal.ansiBrightGreen":   Set("#c8ff00"),
		"terminal.ansiYellow":        Set("#fffc7e"),
		"terminal.ansiBrightYellow":  Set("#f8d846"),
		"terminal.ansiCyan":          Set("#a8ffef"),
		"terminal.ansiBrightCyan":    Set("#83fee8"),
		"terminal.ansiWhite":         Set("#cff0e8"),
		"terminal.ansiBrightWhite":   Set("#cbfff2"),
	}}
}

// ANSIKeys are the terminal palette keys in 0-15 order.
var ANSIKeys = []string{
	"terminal.ansiBlack",
	"terminal.ansiRed",
	"terminal.ansiGreen",
	"terminal.ansiYellow",
	"terminal.ansiBlue",
	"terminal.ansiMagenta",
	"terminal.ansiCyan",
	"terminal.ansiWhite",
	"terminal.ansiBrightBlack",
	"terminal.ansiBrightRed",
	"terminal.ansiBrightGreen",
	"terminal.ansiBrightYellow",
	"terminal.ansiBrightBlue",
	"terminal.ansiBrightMagenta",
	"terminal.ansiBrightCyan",
	"terminal.ansiBrightWhite",
}

// DerivedTerminal maps a 16 colour palette onto the terminal keys. Merged
// after Workbench it replaces the hand picked terminal colours.
func DerivedTerminal(palette []color.Color) Group {
	g := Group{Name: "derivedTerminal", Colors: make(map[string]Value, len(ANSIKeys))}
	for i, key := range ANSIKeys {
		if i < len(palette) {
			g.Colors[key] = Set(palette[i])
		}
	}
	return g
}
