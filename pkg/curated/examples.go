// Package curated holds the fixed, hand-authored Puppet examples that are
// always appended to the harvest. They guarantee a non-empty training
// corpus even when every remote source is unreachable.
package curated

import "github.com/rajeshr264/puppet-llm-training-project/models"

const sourceTag = "comprehensive_examples"

// Examples returns the curated set. Callers receive a fresh slice but the
// records themselves are shared constants; treat them as read-only.
func Examples() []models.Example {
	examples := make([]models.Example, len(curated))
	copy(examples, curated)
	return examples
}

var curated = []models.Example{
	{
		Code: `class apache {
  package { 'apache2':
    ensure => installed,
  }

  service { 'apache2':
    ensure  => running,
    enable  => true,
    require => Package['apache2'],
  }

  file { '/var/www/html/index.html':
    ensure  => file,
    content => '<h1>Hello from Puppet!</h1>',
    require => Package['apache2'],
  }

  file { '/etc/apache2/sites-available/default':
    ensure  => file,
    source  => 'puppet:///modules/apache/default-site',
    notify  => Service['apache2'],
    require => Package['apache2'],
  }
}`,
		Description: "Complete Apache web server class with package, service, and file management",
		Source:      sourceTag,
		PuppetScore: models.MaxScore,
		Origin:      models.OriginCurated,
	},
	{
		Code: `define create_user($username, $uid, $shell = '/bin/bash', $groups = []) {
  user { $username:
    ensure  => present,
    uid     => $uid,
    shell   => $shell,
    home    => "/home/${username}",
    groups  => $groups,
    gid     => $username,
  }

  group { $username:
    ensure => present,
    gid    => $uid,
  }

  file { "/home/${username}":
    ensure  => directory,
    owner   => $username,
    group   => $username,
    mode    => '0755',
    require => User[$username],
  }

  file { "/home/${username}/.bashrc":
    ensure  => file,
    owner   => $username,
    group   => $username,
    mode    => '0644',
    source  => 'puppet:///modules/users/bashrc',
    require => File["/home/${username}"],
  }
}`,
		Description: "Comprehensive defined type for creating users with home directories and configuration",
		Source:      sourceTag,
		PuppetScore: models.MaxScore,
		Origin:      models.OriginCurated,
	},
	{
		Code: `node 'webserver.example.com' {
  include apache
  include mysql::server
  include php

  package { ['php-mysql', 'php-gd', 'php-curl']:
    ensure  => installed,
    require => Class['php'],
  }

  file { '/etc/apache2/sites-available/webapp.conf':
    ensure  => file,
    content => template('webapp/apache-vhost.erb'),
    notify  => Service['apache2'],
    require => Class['apache'],
  }

  apache::site { 'webapp':
    ensure  => enabled,
    require => File['/etc/apache2/sites-available/webapp.conf'],
  }

  mysql::db { 'webapp_db':
    user     => 'webapp_user',
    password => 'secure_password',
    host     => 'localhost',
    grant    => ['SELECT', 'INSERT', 'UPDATE', 'DELETE'],
  }
}`,
		Description: "Complete node definition for a LAMP stack web server",
		Source:      sourceTag,
		PuppetScore: models.MaxScore,
		Origin:      models.OriginCurated,
	},
	{
		Code: `class mysql::server (
  $root_password = 'changeme',
  $bind_address = '127.0.0.1',
  $port = 3306,
  $datadir = '/var/lib/mysql',
) {
  package { 'mysql-server':
    ensure => installed,
  }

  service { 'mysql':
    ensure  => running,
    enable  => true,
    require => Package['mysql-server'],
  }

  file { '/etc/mysql/mysql.conf.d/puppet.cnf':
    ensure  => file,
    content => template('mysql/puppet.cnf.erb'),
    notify  => Service['mysql'],
    require => Package['mysql-server'],
  }

  exec { 'set-mysql-password':
    unless  => "mysqladmin -uroot -p${root_password} status",
    command => "mysqladmin -uroot password ${root_password}",
    path    => ['/usr/bin', '/usr/sbin'],
    require => Service['mysql'],
  }

  mysql_user { 'root@localhost':
    ensure        => 'present',
    password_hash => mysql_password($root_password),
    require       => Exec['set-mysql-password'],
  }
}`,
		Description: "Parameterized MySQL server class with configuration and security setup",
		Source:      sourceTag,
		PuppetScore: models.MaxScore,
		Origin:      models.OriginCurated,
	},
	{
		Code: `class nginx (
  $worker_processes = 'auto',
  $worker_connections = 1024,
  $sendfile = true,
  $tcp_nopush = true,
) {
  package { 'nginx':
    ensure => installed,
  }

  service { 'nginx':
    ensure  => running,
    enable  => true,
    require => Package['nginx'],
  }

  file { '/etc/nginx/nginx.conf':
    ensure  => file,
    content => template('nginx/nginx.conf.erb'),
    notify  => Service['nginx'],
    require => Package['nginx'],
  }

  file { '/etc/nginx/sites-available':
    ensure  => directory,
    require => Package['nginx'],
  }

  file { '/etc/nginx/sites-enabled':
    ensure  => directory,
    require => Package['nginx'],
  }

  # Remove default site
  file { '/etc/nginx/sites-enabled/default':
    ensure => absent,
    notify => Service['nginx'],
  }
}`,
		Description: "Nginx web server class with parameterized configuration",
		Source:      sourceTag,
		PuppetScore: models.MaxScore,
		Origin:      models.OriginCurated,
	},
	{
		Code: `define nginx::site (
  $ensure = 'enabled',
  $server_name = $title,
  $root = "/var/www/${title}",
  $index = 'index.html index.htm',
  $access_log = "/var/log/nginx/${title}_access.log",
  $error_log = "/var/log/nginx/${title}_error.log",
) {
  include nginx

  file { "/etc/nginx/sites-available/${title}":
    ensure  => file,
    content => template('nginx/site.erb'),
    require => Class['nginx'],
  }

  case $ensure {
    'enabled': {
      file { "/etc/nginx/sites-enabled/${title}":
        ensure  => link,
        target  => "/etc/nginx/sites-available/${title}",
        require => File["/etc/nginx/sites-available/${title}"],
        notify  => Service['nginx'],
      }
    }
    'disabled': {
      file { "/etc/nginx/sites-enabled/${title}":
        ensure => absent,
        notify => Service['nginx'],
      }
    }
  }

  file { $root:
    ensure  => directory,
    owner   => 'www-data',
    group   => 'www-data',
    mode    => '0755',
    require => Class['nginx'],
  }
}`,
		Description: "Nginx virtual host defined type with enable/disable functionality",
		Source:      sourceTag,
		PuppetScore: models.MaxScore,
		Origin:      models.OriginCurated,
	},
	{
		Code: `class firewall {
  # Ensure iptables is installed
  package { 'iptables':
    ensure => installed,
  }

  # Default policies
  exec { 'iptables-default-policy-input':
    command => 'iptables -P INPUT DROP',
    unless  => 'iptables -L INPUT | grep "policy DROP"',
    path    => ['/sbin', '/usr/sbin'],
    require => Package['iptables'],
  }

  exec { 'iptables-default-policy-forward':
    command => 'iptables -P FORWARD DROP',
    unless  => 'iptables -L FORWARD | grep "policy DROP"',
    path    => ['/sbin', '/usr/sbin'],
    require => Package['iptables'],
  }

  # Allow loopback
  exec { 'iptables-allow-loopback':
    command => 'iptables -A INPUT -i lo -j ACCEPT',
    unless  => 'iptables -L INPUT | grep "lo.*ACCEPT"',
    path    => ['/sbin', '/usr/sbin'],
    require => Exec['iptables-default-policy-input'],
  }

  # Allow established connections
  exec { 'iptables-allow-established':
    command => 'iptables -A INPUT -m state --state ESTABLISHED,RELATED -j ACCEPT',
    unless  => 'iptables -L INPUT | grep "state RELATED,ESTABLISHED"',
    path    => ['/sbin', '/usr/sbin'],
    require => Exec['iptables-default-policy-input'],
  }
}`,
		Description: "Basic firewall class with iptables rules for security",
		Source:      sourceTag,
		PuppetScore: models.MaxScore,
		Origin:      models.OriginCurated,
	},
}
