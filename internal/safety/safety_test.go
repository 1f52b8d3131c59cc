package safety

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		command string
		want    Level
	}{
		{"ls -la", Safe},
		{"find . -name '*.log'", Safe},
		{"tar -czvf archive.tar.gz ./folder", Safe},
		{"du -sh * | sort -rh", Safe},
		{"echo hello > /dev/null", Safe},
		{"make 2> /dev/stderr", Safe},
		{"git status", Safe},
		{"git reset --soft HEAD~1", Safe},

		{"rm file.txt", Destructive},
		{"rm -rf /tmp/test", Destructive},
		{"sudo apt install vim", Destructive},
		{"dd if=/dev/zero of=/dev/sda", Destructive},
		{"mkfs.ext4 /dev/sda1", Destructive},
		{"echo data >/dev/sda", Destructive},
		{"kill -9 1234", Destructive},
		{"killall nginx", Destructive},
		{"systemctl disable nginx", Destructive},
		{"chown -R root:root /home", Destructive},
		{"truncate -s 0 /var/log/syslog", Destructive},
		{"git reset --hard origin/main", Destructive},
		{"git clean -fdx", Destructive},
		{"git clean -fd", Destructive},
		{"git clean -xfd", Destructive},
		{"git clean -f", Destructive},
		{"git clean -d -f", Destructive},
		{"git clean -n", Safe},
		{"git clean -dn", Safe},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			if got := Classify(tt.command); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}

func TestCheckReason(t *testing.T) {
	tests := []struct {
		command    string
		wantReason string
	}{
		{"rm -rf *", "deletes files"},
		{"sudo reboot", "runs with root privileges"},
		{"shred secret.txt", "irrecoverably overwrites files"},
		{": > app.log", "truncates a file"},
		{"git clean -fd", "deletes untracked files"},
		{"git push origin main --force", "discards git history or work"},
		{"ls", ""},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			if got := Check(tt.command).Reason; got != tt.wantReason {
				t.Errorf("Check(%q).Reason = %q, want %q", tt.command, got, tt.wantReason)
			}
		})
	}
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Finding
	}{
		{"empty", nil, Finding{Level: Safe}},
		{"all safe", []string{"cd /tmp", "ls"}, Finding{Level: Safe}},
		{"second line destructive", []string{"cd /tmp", "rm -rf build"}, Finding{Level: Destructive, Reason: "deletes files"}},
		{"first match wins", []string{"sudo ls", "rm x"}, Finding{Level: Destructive, Reason: "runs with root privileges"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAll(tt.lines); got != tt.want {
				t.Errorf("CheckAll(%q) = %+v, want %+v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Safe, "safe"},
		{Destructive, "destructive"},
		{Level(99), "safe"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
