// Package locale provides the user-facing message catalog.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when no locale is configured or it is unsupported.
const DefaultLocale = "es"

// Message keys.
const (
	KeyWelcome         = "status.welcome"
	KeyLoaded          = "status.loaded"
	KeyPasted          = "status.pasted"
	KeyEdited          = "status.edited"
	KeyEmptyInput      = "status.empty_input"
	KeyEmptyPaste      = "status.empty_paste"
	KeyEmptyEdit       = "status.empty_edit"
	KeyNoOriginal      = "status.no_original"
	KeyFileReadFailed  = "status.file_read_failed"
	KeyClipboardFailed = "status.clipboard_failed"
	KeySpinning        = "status.spinning"
	KeySelected        = "status.selected"
	KeyShowingFirst    = "status.showing_first"
	KeyShowingLast     = "status.showing_last"
	KeyBusy            = "status.busy"
	KeyFilePrompt      = "prompt.file"
	KeyHelp            = "help.main"
	KeyHelpEdit        = "help.edit"
	KeyHelpPrompt      = "help.prompt"
	KeyFooterSpins     = "footer.spins"
	KeyFooterLast      = "footer.last"
	KeyFooterEntrants  = "footer.entrants"
)

var builtin = map[string]map[string]string{
	"es": {
		KeyWelcome:         "Carga un archivo con nombres para comenzar.",
		KeyLoaded:          "Se cargaron %d nombres.",
		KeyPasted:          "Se cargaron %d nombres pegados.",
		KeyEdited:          "Lista editada manualmente.",
		KeyEmptyInput:      "Necesitamos al menos un nombre válido.",
		KeyEmptyPaste:      "Pega al menos un nombre para aplicar los cambios.",
		KeyEmptyEdit:       "Introduce al menos un nombre para actualizar la lista.",
		KeyNoOriginal:      "Primero carga un archivo con nombres.",
		KeyFileReadFailed:  "No se pudo leer el archivo seleccionado.",
		KeyClipboardFailed: "No se pudo leer el portapapeles.",
		KeySpinning:        "Girando...",
		KeySelected:        "Seleccionado: %s",
		KeyShowingFirst:    "Mostrando solo apellidos.",
		KeyShowingLast:     "Mostrando solo nombre.",
		KeyBusy:            "Espera a que termine el giro.",
		KeyFilePrompt:      "Archivo: ",
		KeyHelp:            "girar: espacio  abrir: o  apellidos: f  nombre: l  pegar: p  editar: e  salir: q",
		KeyHelpEdit:        "editando lista  salir del editor: esc",
		KeyHelpPrompt:      "cargar: enter  cancelar: esc",
		KeyFooterSpins:     "Giros: %d",
		KeyFooterLast:      "Último: %s",
		KeyFooterEntrants:  "Nombres: %d",
	},
	"en": {
		KeyWelcome:         "Load a file with names to get started.",
		KeyLoaded:          "Loaded %d names.",
		KeyPasted:          "Loaded %d pasted names.",
		KeyEdited:          "List edited manually.",
		KeyEmptyInput:      "At least one valid name is required.",
		KeyEmptyPaste:      "Paste at least one name to apply the changes.",
		KeyEmptyEdit:       "Enter at least one name to update the list.",
		KeyNoOriginal:      "Load a file with names first.",
		KeyFileReadFailed:  "Could not read the selected file.",
		KeyClipboardFailed: "Could not read the clipboard.",
		KeySpinning:        "Spinning...",
		KeySelected:        "Selected: %s",
		KeyShowingFirst:    "Showing surnames only.",
		KeyShowingLast:     "Showing given names only.",
		KeyBusy:            "Wait for the spin to finish.",
		KeyFilePrompt:      "File: ",
		KeyHelp:            "spin: space  open: o  surnames: f  names: l  paste: p  edit: e  quit: q",
		KeyHelpEdit:        "editing list  leave editor: esc",
		KeyHelpPrompt:      "load: enter  cancel: esc",
		KeyFooterSpins:     "Spins: %d",
		KeyFooterLast:      "Last: %s",
		KeyFooterEntrants:  "Names: %d",
	},
}

// Catalog formats messages for one locale.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// Supported returns the built-in locale identifiers.
func Supported() []string {
	out := make([]string, 0, len(builtin))
	for locale := range builtin {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// New builds a catalog for locale, applying per-key overrides on top of the
// built-in messages. Unsupported locales fall back to DefaultLocale.
func New(locale string, overrides map[string]string) (*Catalog, error) {
	fallback := language.MustParse(DefaultLocale)
	b := catalog.NewBuilder(catalog.Fallback(fallback))
	tags := make([]language.Tag, 0, len(builtin))
	for _, id := range Supported() {
		tag, err := language.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse locale %q: %w", id, err)
		}
		tags = append(tags, tag)
		for key, msg := range builtin[id] {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("failed to register message %q: %w", key, err)
			}
		}
	}

	tag := resolveTag(locale, tags, fallback)
	for key, msg := range overrides {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if err := b.SetString(tag, key, msg); err != nil {
			return nil, fmt.Errorf("failed to override message %q: %w", key, err)
		}
	}
	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}, nil
}

func resolveTag(locale string, supported []language.Tag, fallback language.Tag) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return fallback
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return fallback
	}
	_, index, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return fallback
	}
	return supported[index]
}

// Locale returns the resolved locale tag.
func (c *Catalog) Locale() string {
	return c.tag.String()
}

// T formats the message for key with args.
func (c *Catalog) T(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}
