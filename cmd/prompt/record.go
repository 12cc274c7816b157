package prompt

import (
	"github.com/manifoldco/promptui"

	"github.com/allen-go/allen/allen"
)

// SelectTestRecord show select prompt to choose a test whose solutions are fetched
func SelectTestRecord(records []allen.TestRecord) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U00002714 {{ .TestName | red }} {{ .TestDate | red }}",
		Inactive: "{{ .TestName | cyan }} {{ .TestDate | faint }}",
		Selected: "{{ .TestName | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select a test: ",
		Items:     records,
		Templates: templates,
		Size:      min(len(records), 15),
	}

	index, _, err := prompt.Run()
	return index, err
}

// SelectAddonClass show select prompt to choose the subject whose links are resolved
func SelectAddonClass(classes []allen.AddonClass) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U00002714 {{ .SubjectName | red }}",
		Inactive: "{{ .SubjectName | cyan }}",
	}

	prompt := promptui.Select{
		Label:        "Select a subject: ",
		Items:        classes,
		Templates:    templates,
		Size:         len(classes),
		HideSelected: true,
	}

	index, _, err := prompt.Run()
	return index, err
}
