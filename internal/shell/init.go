package shell

import "fmt"

// InitScript generates the complete shell initialization script.
// This is designed to be used with: eval "$(hop init bash)"
// It includes: the cd hook that records visits, and the `h` function.
func InitScript(shellName string) (string, error) {
	if !ValidShell(shellName) {
		return "", ShellError(shellName)
	}

	var out string
	out += fmt.Sprintf("# hop shell init (%s)\n", shellName)
	out += "# Add to your shell config: eval \"$(hop init " + shellName + ")\"\n\n"

	out += hookScript(shellName)
	out += jumpFunction(shellName)

	return out, nil
}

// hookScript wires `hop track` into the shell's directory-change hook so
// every visited directory lands in the registry.
func hookScript(shellName string) string {
	switch shellName {
	case Fish:
		return `# hop cd hook
function __hop_track --on-variable PWD
  command hop track "$PWD" &>/dev/null &
end

`
	case Zsh:
		return `# hop cd hook
__hop_track() {
  (command hop track "$PWD" &>/dev/null &)
}
typeset -ag chpwd_functions
if [[ -z "${chpwd_functions[(r)__hop_track]}" ]]; then
  chpwd_functions+=(__hop_track)
fi

`
	default: // bash has no chpwd; wrap cd and friends
		return `# hop cd hook
__hop_track() {
  (command hop track "$PWD" &>/dev/null &)
}
cd() { builtin cd "$@" && __hop_track; }
pushd() { builtin pushd "$@" && __hop_track; }
popd() { builtin popd "$@" && __hop_track; }

`
	}
}

// jumpFunction defines `h`: cd to the best match, `h -` for the previous
// directory, bare `h` for the picker.
func jumpFunction(shellName string) string {
	if shellName == Fish {
		return `# hop jump
function h
  set -l dest (command hop $argv)
  if test -n "$dest"
    cd "$dest"
  end
end

`
	}
	return `# hop jump
h() {
  local dest
  dest="$(command hop "$@")" || return $?
  if [ -n "$dest" ]; then
    cd "$dest"
  fi
}

`
}
