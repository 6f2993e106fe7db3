package script

const checkDocumentationURL = "https://github.com/autocommit-tools/setupcheck/blob/main/docs/checks.md"
