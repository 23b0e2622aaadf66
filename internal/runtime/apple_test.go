package runtime

import "testing"

func TestAppleStopSequencesStopThenDelete(t *testing.T) {
	fakeBin(t, "container", `
case "$1" in
  stop) exit 0 ;;
  delete) exit 0 ;;
esac
`)
	a := NewApple()
	if err := a.Stop("vibedom-myworkspace"); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestAppleStopDeletesEvenIfAlreadyStopped(t *testing.T) {
	fakeBin(t, "container", `
case "$1" in
  stop) exit 1 ;;
  delete) exit 0 ;;
esac
`)
	a := NewApple()
	if err := a.Stop("vibedom-myworkspace"); err != nil {
		t.Fatalf("Stop should ignore a failing stop and still delete: %v", err)
	}
}

func TestAppleListNoFilterFlag(t *testing.T) {
	fakeBin(t, "container", `echo "vibedom-a"`)
	a := NewApple()
	names, err := a.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "vibedom-a" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestAppleIsRunningUsesNonAllList(t *testing.T) {
	fakeBin(t, "container", `
if [ "$1" = "list" ]; then
  for arg in "$@"; do
    if [ "$arg" = "--all" ]; then
      echo "vibedom-stopped"
      exit 0
    fi
  done
  echo "vibedom-running"
fi
`)
	a := NewApple()
	running, err := a.IsRunning("vibedom-running")
	if err != nil {
		t.Fatalf("IsRunning: %v", err)
	}
	if !running {
		t.Fatal("expected vibedom-running to be reported running")
	}
	stillRunning, err := a.IsRunning("vibedom-stopped")
	if err != nil {
		t.Fatalf("IsRunning: %v", err)
	}
	if stillRunning {
		t.Fatal("expected vibedom-stopped (only present via --all) to be reported not running")
	}
}
