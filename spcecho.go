// This file is part of spcecho.
//
// spcecho is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// spcecho is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with spcecho.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/spcecho/confirm"
	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/echoedit"
	"github.com/jetsetilly/spcecho/logger"
	"github.com/jetsetilly/spcecho/modalflag"
	"github.com/jetsetilly/spcecho/paths"
	"github.com/jetsetilly/spcecho/preferences"
	"github.com/jetsetilly/spcecho/prefs"
	"github.com/jetsetilly/spcecho/preview"
	"github.com/jetsetilly/spcecho/version"
)

// errors in the command line arguments of a mode.
const (
	fileRequired    = "%s file required for %s mode"
	tooManyArgs     = "too many arguments for %s mode"
	sampleRateRange = "sample rate must be between %d and %d"
)

// number of log entries shown after an unexpected error.
const unexpectedTail = 10

// the streams and files used by a single run of the program.
type environment struct {
	input     *os.File
	output    io.Writer
	prefsPath string
}

func main() {
	env := environment{
		input:  os.Stdin,
		output: os.Stdout,
	}

	var err error
	env.prefsPath, err = paths.ResourcePath(preferences.DefaultPrefsFile)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	os.Exit(launch(env, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the exit
// status of the program.
func launch(env environment, args []string) int {
	// the log is per run
	logger.Clear()

	md := &modalflag.Modes{Output: env.output}
	md.NewArgs(args)
	md.NewMode()
	showVersion := md.AddBool("version", false, "print version information and exit")
	md.AddSubModes("PATCH", "INFO", "PREVIEW", "PREFS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(env.output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(env.output, version.String())
		return 0
	}

	switch md.Mode() {
	case "PATCH":
		err = patchMode(env, md)

	case "INFO":
		err = infoMode(env, md)

	case "PREVIEW":
		err = previewMode(env, md)

	case "PREFS":
		err = prefsMode(env, md)
	}

	return modeError(env, md, err)
}

// modeError reports an error from a mode and returns the exit status.
func modeError(env environment, md *modalflag.Modes, err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(env.output, "* error in %s mode: %s\n", md.String(), err)

	// errors from outside of spcecho are unexpected. the end of the log
	// shows what was happening at the time
	if !curated.IsAny(err) {
		logger.Tail(env.output, unexpectedTail)
	}

	return 20
}

// flags for the echo register values.
type commandFlags struct {
	left     *string
	right    *string
	feedback *string
	speed    *string
	channels *string
	address  *string
}

func addCommandFlags(md *modalflag.Modes) commandFlags {
	return commandFlags{
		left:     md.AddString("l", "", "left echo volume percentage (-100 to 100)"),
		right:    md.AddString("r", "", "right echo volume percentage (-100 to 100)"),
		feedback: md.AddString("f", "", "feedback percentage (-100 to 100)"),
		speed:    md.AddString("t", "", "echo time in ms (0 to 240, rounded to 16ms)"),
		channels: md.AddString("c", "", "echo on (X) or off (O) for channels 1 to 8. eg. XOXOXOOO"),
		address:  md.AddString("a", "", "echo buffer address in hex (02 to FF). automatic if not set"),
	}
}

func (cf commandFlags) commands() echoedit.Commands {
	return echoedit.Commands{
		LeftVolume:    *cf.left,
		RightVolume:   *cf.right,
		Feedback:      *cf.feedback,
		EchoSpeed:     *cf.speed,
		ChannelMask:   *cf.channels,
		BufferAddress: *cf.address,
	}
}

const commandHelp = `Echo buffer uses 2kb for every 16ms. Music data and echo buffer must
not exceed 64kb. Without the -a flag the echo buffer is placed immediately
after the SPC's audio data.`

// flags common to all modes.
type commonFlags struct {
	log   *bool
	prefs *string
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
		prefs: md.AddString("prefs", "", "preferences for this run only. eg. \"confirm.keypress::false\""),
	}
}

// apply the common flags and load the preferences.
func (cf commonFlags) apply(env environment) (*preferences.Preferences, error) {
	if *cf.log {
		logger.SetEcho(env.output)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*cf.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()

	return preferences.NewPreferences(env.prefsPath)
}

func patchMode(env environment, md *modalflag.Modes) error {
	md.NewMode()

	cmds := addCommandFlags(md)
	yes := md.AddBool("y", false, "answer yes to every question")
	memvizFile := md.AddString("memviz", "", "write graph of the echo registers to a DOT file")
	common := addCommonFlags(md)
	md.AdditionalHelp(fmt.Sprintf("usage: %s [PATCH] [flags] input[.spc] [output[.spc]]\n\n%s", version.ApplicationName, commandHelp))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := common.apply(env)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(fileRequired, "SPC", md)
	case 1, 2:
	default:
		return curated.Errorf(tooManyArgs, md)
	}

	ed := &echoedit.Editor{
		Output:    env.output,
		Extension: pref.Extension.String(),
		Memviz:    *memvizFile,
	}

	if *yes {
		ed.Confirm = confirm.AssumeYes{Output: env.output}
	} else {
		ed.Confirm = confirm.New(env.input, env.output, pref.Keypress.Get().(bool))
	}

	err = ed.Patch(md.GetArg(0), md.GetArg(1), cmds.commands())

	// declining to overwrite the output file is not an error
	if curated.Has(err, echoedit.NotSaved) {
		fmt.Fprintln(env.output, err)
		return nil
	}

	return err
}

func infoMode(env environment, md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	md.AdditionalHelp(fmt.Sprintf("usage: %s INFO [flags] input[.spc]", version.ApplicationName))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := common.apply(env)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(fileRequired, "SPC", md)
	case 1:
	default:
		return curated.Errorf(tooManyArgs, md)
	}

	return echoedit.Info(env.output, md.GetArg(0), pref.Extension.String())
}

func previewMode(env environment, md *modalflag.Modes) error {
	md.NewMode()

	cmds := addCommandFlags(md)
	source := md.AddString("source", "", "WAV or MP3 file to pass through the echo. an impulse is used if not set")
	seconds := md.AddFloat64("seconds", 0.0, "minimum length of the preview in seconds (default from preferences)")
	rate := md.AddInt("rate", 0, "sample rate of the preview (default from preferences)")
	listen := md.AddBool("listen", false, "play the preview after rendering")
	common := addCommonFlags(md)
	md.AdditionalHelp(fmt.Sprintf("usage: %s PREVIEW [flags] input[.spc] output.wav\n\n%s", version.ApplicationName, commandHelp))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := common.apply(env)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(fileRequired, "SPC", md)
	case 1:
		return curated.Errorf(fileRequired, "WAV", md)
	case 2:
	default:
		return curated.Errorf(tooManyArgs, md)
	}

	wavFile := md.GetArg(1)
	if !strings.HasSuffix(strings.ToLower(wavFile), ".wav") {
		wavFile = fmt.Sprintf("%s.wav", wavFile)
	}

	opts := echoedit.PreviewOptions{
		Source:     *source,
		Seconds:    pref.PreviewSeconds.Get().(float64),
		Impulse:    pref.PreviewImpulse.Get().(float64),
		SampleRate: pref.SampleRate,
	}
	if md.IsSet("seconds") {
		opts.Seconds = *seconds
	}
	if md.IsSet("rate") {
		if *rate < preferences.MinSampleRate || *rate > preferences.MaxSampleRate {
			return curated.Errorf(sampleRateRange, preferences.MinSampleRate, preferences.MaxSampleRate)
		}
		opts.SampleRate = *rate
	}

	ed := &echoedit.Editor{
		Output:    env.output,
		Extension: pref.Extension.String(),
	}

	res, err := ed.Preview(md.GetArg(0), cmds.commands(), opts)
	if err != nil {
		return err
	}

	err = preview.SaveWAV(wavFile, res.PCM, pref.BitDepth)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.output, "Preview saved to %s\n", wavFile)

	if *listen {
		return preview.Audition(res.PCM)
	}

	return nil
}

func prefsMode(env environment, md *modalflag.Modes) error {
	md.NewMode()

	save := md.AddBool("save", false, "save the preferences in effect, including those given with -prefs")
	reset := md.AddBool("reset", false, "restore and save the default preferences")
	common := addCommonFlags(md)
	md.AdditionalHelp(fmt.Sprintf("usage: %s PREFS [flags]", version.ApplicationName))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := common.apply(env)
	if err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(tooManyArgs, md)
	}

	if *reset {
		pref.SetDefaults()
	}

	if *save || *reset {
		err = pref.Save()
		if err != nil {
			return err
		}
		fmt.Fprintf(env.output, "Preferences saved to %s\n", env.prefsPath)
	}

	fmt.Fprint(env.output, pref)

	return nil
}
