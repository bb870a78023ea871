package domain

import "fmt"

// EntrypointScript returns the container entrypoint. It enters the community
// root, aligns the container's docker group id with the host's and execs the
// user's shell.
func EntrypointScript(s *Settings) string {
	return fmt.Sprintf(`#! %[1]s
cd %[2]s
sudo sed -ie s/docker:x:[0-9]*:%[3]s/docker:x:%[4]d:%[3]s/g /etc/group
exec %[1]s
`, s.Shell, s.CommunityRoot, s.User, s.DockerGID)
}

// RunScript returns the script that launches the project container.
func RunScript(s *Settings) string {
	return fmt.Sprintf(`#!/bin/sh
exec docker run -it \
    -v /var/run/docker.sock:/var/run/docker.sock \
    -v %[1]s:%[1]s \
    -v %[2]s:%[2]s \
    --entrypoint=/%[3]s -u %[4]s:%[5]d %[6]s
`, s.Home, s.CommunityRoot, EntrypointName, s.User, s.DockerGID, s.ImageTag())
}
